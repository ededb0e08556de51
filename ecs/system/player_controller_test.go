package system

import (
	"testing"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestPlayerControllerMovement(t *testing.T) {
	tests := []struct {
		name     string
		keys     []Direction
		grounded bool
		startVY  float64
		wantVX   float64
		wantVY   float64
		wantAnim component.AnimationID
	}{
		{"idle", nil, true, 0, 0, 0, component.AnimationIdle},
		{"left", []Direction{DirectionLeft}, true, 0, -200, 0, component.AnimationMovingLeft},
		{"right", []Direction{DirectionRight}, true, 0, 200, 0, component.AnimationMovingRight},
		{"left_and_right", []Direction{DirectionLeft, DirectionRight}, true, 0, -200, 0, component.AnimationMovingLeft},
		{"jump_on_ground", []Direction{DirectionUp}, true, 0, 0, -330, component.AnimationIdle},
		{"jump_while_running", []Direction{DirectionRight, DirectionUp}, true, 0, 200, -330, component.AnimationMovingRight},
		{"up_while_airborne", []Direction{DirectionUp}, false, 57, 0, 57, component.AnimationIdle},
		{"left_up_while_airborne", []Direction{DirectionLeft, DirectionUp}, false, -12, -200, -12, component.AnimationMovingLeft},
		{"down_is_ignored", []Direction{DirectionDown}, true, 5, 0, 5, component.AnimationIdle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 1)
			f.hold(tc.keys...)

			_, vel := f.player()
			vel.Y = tc.startVY
			contact, _ := ecs.Get(f.w, f.scene.Player, component.PlayerCollisionComponent.Kind())
			contact.Grounded = tc.grounded

			NewInputSystem(KeySourceFunc(func(d Direction) bool { return f.keys[d] })).Update(f.w)
			NewPlayerControllerSystem().Update(f.w)

			anim, _ := ecs.Get(f.w, f.scene.Player, component.AnimationComponent.Kind())
			assert.Equal(t, tc.wantVX, vel.X)
			assert.Equal(t, tc.wantVY, vel.Y)
			assert.Equal(t, tc.wantAnim, anim.Current)
		})
	}
}

func TestPlayerControllerKeepsRunningClip(t *testing.T) {
	f := newFixture(t, 1)
	f.hold(DirectionLeft)
	input := NewInputSystem(KeySourceFunc(func(d Direction) bool { return f.keys[d] }))
	controller := NewPlayerControllerSystem()
	animation := NewAnimationSystem()

	anim, _ := ecs.Get(f.w, f.scene.Player, component.AnimationComponent.Kind())
	for i := 0; i < 7; i++ {
		input.Update(f.w)
		controller.Update(f.w)
		animation.Update(f.w)
	}

	// 10 fps at 60 TPS: six ticks per frame
	assert.Equal(t, component.AnimationMovingLeft, anim.Current)
	assert.Equal(t, 1, anim.Frame)
}

func TestPlayerControllerSkippedAfterGameOver(t *testing.T) {
	f := newFixture(t, 1)
	session, _ := ecs.Get(f.w, f.scene.Session, component.SessionComponent.Kind())
	session.State = component.GameOver

	_, vel := f.player()
	vel.X, vel.Y = 13, 17
	contact, _ := ecs.Get(f.w, f.scene.Player, component.PlayerCollisionComponent.Kind())
	contact.Grounded = true

	f.hold(DirectionRight, DirectionUp)
	NewInputSystem(KeySourceFunc(func(d Direction) bool { return f.keys[d] })).Update(f.w)
	NewPlayerControllerSystem().Update(f.w)

	assert.Equal(t, component.Velocity{X: 13, Y: 17}, *vel)
}
