package entity

import (
	"fmt"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

type part func(w *ecs.World, e ecs.Entity) error

func with[T any](kind component.ComponentKind[T], value *T) part {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

// spawn creates an entity from parts. A failing part destroys the half-built
// entity.
func spawn(w *ecs.World, name string, parts ...part) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: nil world", name)
	}
	e := ecs.CreateEntity(w)
	for _, add := range parts {
		if err := add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: %w", name, err)
		}
	}
	return e, nil
}

func transformFromSpec(s prefabs.TransformSpec) *component.Transform {
	t := &component.Transform{X: s.X, Y: s.Y, ScaleX: s.ScaleX, ScaleY: s.ScaleY}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

func spriteFromSpec(s prefabs.SpriteSpec) *component.Sprite {
	return &component.Sprite{Image: s.Image, FrameW: s.FrameW, FrameH: s.FrameH, Frame: s.Frame}
}
