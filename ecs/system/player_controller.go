package system

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update turns the polled keys into player velocity. Left wins over right;
// a jump needs ground contact at this instant.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || !playing(w) {
		return
	}

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerCollisionComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity, contact *component.PlayerCollision) {
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

			switch {
			case input.Left:
				vel.X = -player.MoveSpeed
				anim.Play(component.AnimationMovingLeft, true)
			case input.Right:
				vel.X = player.MoveSpeed
				anim.Play(component.AnimationMovingRight, true)
			default:
				vel.X = 0
				anim.Play(component.AnimationIdle, true)
			}

			if input.Up && contact.Grounded {
				vel.Y = -player.JumpSpeed
			}
		},
	)
}
