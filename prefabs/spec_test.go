package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.World.Width != 800 || spec.World.Height != 600 || spec.World.Gravity != 350 {
		t.Fatalf("unexpected world %+v", spec.World)
	}
	if len(spec.Platforms) != 4 {
		t.Fatalf("expected 4 platforms, got %d", len(spec.Platforms))
	}
	if spec.Stars.Count != 12 || spec.Stars.StartX != 12 || spec.Stars.StepX != 70 || spec.Stars.Points != 10 {
		t.Fatalf("unexpected stars %+v", spec.Stars)
	}
	if spec.Bombs.SplitX != 400 || spec.Bombs.SpawnY != 16 || spec.Bombs.FallSpeed != 20 || spec.Bombs.MaxSpeedX != 200 {
		t.Fatalf("unexpected bombs %+v", spec.Bombs)
	}
	if spec.Score.Prefix != "score: " {
		t.Fatalf("unexpected prefix %q", spec.Score.Prefix)
	}
	if got := len(spec.Player.Animation.Defs); got != 3 {
		t.Fatalf("expected 3 player animations, got %d", got)
	}
}

func TestSceneSpecValidate(t *testing.T) {
	valid := func() SceneSpec {
		return SceneSpec{
			World:     WorldSpec{Width: 800, Height: 600},
			Platforms: []PlatformSpec{{}},
			Stars:     StarsSpec{Count: 1, BounceMin: 0.4, BounceMax: 0.8},
		}
	}

	tests := []struct {
		name   string
		mutate func(*SceneSpec)
		want   error
	}{
		{"valid", func(*SceneSpec) {}, nil},
		{"zero_width", func(s *SceneSpec) { s.World.Width = 0 }, ErrBadWorld},
		{"no_platforms", func(s *SceneSpec) { s.Platforms = nil }, ErrNoPlatforms},
		{"no_stars", func(s *SceneSpec) { s.Stars.Count = 0 }, ErrNoStars},
		{"empty_bounce_band", func(s *SceneSpec) { s.Stars.BounceMax = s.Stars.BounceMin }, ErrBadBounceBand},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSpritesCoverScene(t *testing.T) {
	scene, err := LoadSceneSpec()
	if err != nil {
		t.Fatal(err)
	}
	sprites, err := LoadSpritesSpec()
	if err != nil {
		t.Fatal(err)
	}

	keys := []string{scene.World.Background, scene.Player.Sprite.Image, scene.Stars.Sprite.Image, scene.Bombs.Sprite.Image}
	for _, p := range scene.Platforms {
		keys = append(keys, p.Sprite.Image)
	}
	for _, key := range keys {
		if _, ok := sprites.Images[key]; !ok {
			t.Fatalf("image %q is not defined in %s", key, SpritesFile)
		}
	}

	dude := sprites.Images[scene.Player.Sprite.Image]
	if dude.Frames != 9 || dude.Width != scene.Player.Sprite.FrameW || dude.Height != scene.Player.Sprite.FrameH {
		t.Fatalf("unexpected player sheet %+v", dude)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"scene.yaml", "scene.yaml"},
		{"prefabs/scene.yaml", "scene.yaml"},
	}
	for _, tc := range tests {
		if got := cleanPrefabPath(tc.in); got != tc.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOnlySpritesReadFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", SceneFile), []byte("world: { width: 1 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sprites := "images:\n  sky: { width: 4, height: 4, color: \"#000000\" }\n"
	if err := os.WriteFile(filepath.Join(dir, "prefabs", SpritesFile), []byte(sprites), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	scene, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	if scene.World.Width != 800 {
		t.Fatalf("scene was read from disk: width %v", scene.World.Width)
	}

	data, err := Load(SpritesFile)
	if err != nil {
		t.Fatalf("load sprites: %v", err)
	}
	if string(data) != sprites {
		t.Fatalf("sprites not read from disk: %q", data)
	}
}

func TestWatcherReportsEditedSpec(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SpritesFile), []byte("images: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != SpritesFile {
			t.Fatalf("got event for %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}
