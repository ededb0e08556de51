package entity

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	anim, err := animationFromSpec(spec.Animation)
	if err != nil {
		return 0, err
	}
	return spawn(w, "player",
		with(component.EntityTagComponent.Kind(), &component.EntityTag{Kind: component.EntityKindPlayer}),
		with(component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed, JumpSpeed: spec.JumpSpeed}),
		with(component.TransformComponent.Kind(), transformFromSpec(spec.Transform)),
		with(component.VelocityComponent.Kind(), &component.Velocity{}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:              spec.Collider.Width,
			Height:             spec.Collider.Height,
			Mass:               1,
			Elasticity:         spec.Bounce,
			CollideWorldBounds: true,
		}),
		with(component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}),
		with(component.InputComponent.Kind(), &component.Input{}),
		with(component.AnimationComponent.Kind(), anim),
		with(component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite)),
		with(component.TintComponent.Kind(), &component.Tint{Mode: component.TintNormal}),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}),
	)
}
