package system

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

// Direction is one of the four logical keys the game reads.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// KeySource reports whether a direction is held this frame.
type KeySource interface {
	Pressed(d Direction) bool
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func(d Direction) bool

func (f KeySourceFunc) Pressed(d Direction) bool {
	if f == nil {
		return false
	}
	return f(d)
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.keys == nil || w == nil {
		return
	}

	left := i.keys.Pressed(DirectionLeft)
	right := i.keys.Pressed(DirectionRight)
	up := i.keys.Pressed(DirectionUp)
	down := i.keys.Pressed(DirectionDown)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Up = up
		input.Down = down
	})
}
