package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns a prefab file. Only the sprite sheet may be overridden by an
// on-disk copy under prefabs/; the scene rules always come from the binary.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if overridable(clean) {
		if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func overridable(clean string) bool {
	return clean == SpritesFile
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
