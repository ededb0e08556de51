package entity

import (
	"math/rand/v2"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

// StarHome returns the spawn position of star i in the pool.
func StarHome(spec prefabs.StarsSpec, i int) (float64, float64) {
	return spec.StartX + spec.StepX*float64(i), spec.Y
}

// NewStar builds star i of the pool with a bounce drawn from
// [BounceMin, BounceMax).
func NewStar(w *ecs.World, spec prefabs.StarsSpec, i int, rng *rand.Rand) (ecs.Entity, error) {
	x, y := StarHome(spec, i)
	bounce := spec.BounceMin + rng.Float64()*(spec.BounceMax-spec.BounceMin)
	return spawn(w, "star",
		with(component.EntityTagComponent.Kind(), &component.EntityTag{Kind: component.EntityKindStar}),
		with(component.StarComponent.Kind(), &component.Star{Index: i, HomeX: x, HomeY: y, Bounce: bounce, Active: true}),
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.VelocityComponent.Kind(), &component.Velocity{}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:      spec.Collider.Width,
			Height:     spec.Collider.Height,
			Mass:       1,
			Elasticity: bounce,
		}),
		with(component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite)),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}),
	)
}
