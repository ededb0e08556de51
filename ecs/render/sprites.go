package render

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

// SpriteRenderer draws the background and every visible sprite, lowest
// render layer first.
type SpriteRenderer struct {
	images     *Registry
	background string
}

func NewSpriteRenderer(images *Registry, background string) *SpriteRenderer {
	return &SpriteRenderer{images: images, background: background}
}

func (r *SpriteRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if bg := r.images.Image(r.background); bg != nil {
		screen.DrawImage(bg, nil)
	}

	for _, e := range drawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden {
			continue
		}
		img := r.images.Image(s.Image)
		if img == nil {
			continue
		}
		if rect, ok := frameRect(img.Bounds(), s.FrameW, s.FrameH, s.Frame); ok {
			if sub, ok := img.SubImage(rect).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		// transforms are centres
		op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)

		if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok && tint.Mode == component.TintAlert {
			op.ColorScale.Scale(1, 0.25, 0.25, 1)
		}

		screen.DrawImage(img, op)
	}
}

// drawOrder sorts sprites by render layer, then by entity for stability.
func drawOrder(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	layers := make(map[ecs.Entity]int)
	ecs.ForEach(w, component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Sprite) {
		entities = append(entities, e)
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layers[e] = layer.Index
		}
	})
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layers[entities[i]], layers[entities[j]]
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

// frameRect returns the cell of a horizontal sheet. Frames past the end wrap.
func frameRect(bounds image.Rectangle, frameW, frameH, frame int) (image.Rectangle, bool) {
	if frameW <= 0 || frameH <= 0 {
		return image.Rectangle{}, false
	}
	cols := bounds.Dx() / frameW
	if cols <= 0 {
		return image.Rectangle{}, false
	}
	if frame < 0 {
		frame = 0
	}
	frame %= cols
	x := bounds.Min.X + frame*frameW
	return image.Rect(x, bounds.Min.Y, x+frameW, bounds.Min.Y+frameH), true
}
