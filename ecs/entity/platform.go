package entity

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

// NewPlatform builds a static platform. The collider is the unscaled sprite
// size multiplied by the transform scale.
func NewPlatform(w *ecs.World, spec prefabs.PlatformSpec) (ecs.Entity, error) {
	t := transformFromSpec(spec.Transform)
	return spawn(w, "platform",
		with(component.EntityTagComponent.Kind(), &component.EntityTag{Kind: component.EntityKindPlatform}),
		with(component.PlatformComponent.Kind(), &component.Platform{}),
		with(component.TransformComponent.Kind(), t),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:      spec.Collider.Width * t.ScaleX,
			Height:     spec.Collider.Height * t.ScaleY,
			Friction:   1,
			Elasticity: 1,
			Static:     true,
		}),
		with(component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite)),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}),
	)
}
