package system

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

const ticksPerSecond = 60.0

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || len(def.Frames) == 0 {
			return
		}

		if anim.Playing {
			advance(anim, def)
		}

		if frame, ok := anim.SheetFrame(); ok {
			sprite.Frame = frame
		}
	})
}

// advance moves one tick forward at 60 TPS.
func advance(anim *component.Animation, def component.AnimationDef) {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(ticksPerSecond / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.Timer++
	if anim.Timer < ticksPerFrame {
		return
	}
	anim.Timer = 0
	anim.Frame++
	if anim.Frame < len(def.Frames) {
		return
	}

	switch {
	case def.Repeat == component.RepeatForever:
		anim.Frame = 0
	case anim.Loops < def.Repeat:
		anim.Loops++
		anim.Frame = 0
	default:
		anim.Frame = len(def.Frames) - 1
		anim.Playing = false
	}
}
