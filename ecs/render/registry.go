package render

import "github.com/hajimehoshi/ebiten/v2"

// Registry stores images by key. Re-registering a key replaces the image,
// which is how hot-reloaded art takes effect.
type Registry struct {
	images map[string]*ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by key.
func (r *Registry) Register(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	if old, ok := r.images[key]; ok && old != img {
		old.Deallocate()
	}
	r.images[key] = img
}

// Image returns a registered image by key.
func (r *Registry) Image(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.images)
}
