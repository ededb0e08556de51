package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starcatcher/ecs/system"
)

// keyboard reads the arrow keys.
type keyboard struct{}

func (keyboard) Pressed(d system.Direction) bool {
	switch d {
	case system.DirectionLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case system.DirectionRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case system.DirectionUp:
		return ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case system.DirectionDown:
		return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	default:
		return false
	}
}
