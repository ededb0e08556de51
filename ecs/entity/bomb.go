package entity

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

// NewBomb builds a perfectly elastic, bounds-clamped hazard moving at (vx, vy).
func NewBomb(w *ecs.World, spec prefabs.BombsSpec, x, y, vx, vy float64, wave int) (ecs.Entity, error) {
	bounce := spec.Bounce
	if bounce == 0 {
		bounce = 1
	}
	return spawn(w, "bomb",
		with(component.EntityTagComponent.Kind(), &component.EntityTag{Kind: component.EntityKindBomb}),
		with(component.BombComponent.Kind(), &component.Bomb{Wave: wave}),
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:              spec.Collider.Width,
			Height:             spec.Collider.Height,
			Radius:             spec.Collider.Radius,
			Mass:               1,
			Elasticity:         bounce,
			CollideWorldBounds: true,
		}),
		with(component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite)),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}),
	)
}
