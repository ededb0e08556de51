package entity

import (
	"fmt"

	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

// ParseAnimationID resolves a clip name from a prefab to its id.
func ParseAnimationID(name string) (component.AnimationID, error) {
	switch name {
	case "", "idle", "turn":
		return component.AnimationIdle, nil
	case "left":
		return component.AnimationMovingLeft, nil
	case "right":
		return component.AnimationMovingRight, nil
	default:
		return 0, fmt.Errorf("unknown animation %q", name)
	}
}

func animationFromSpec(spec prefabs.AnimationSpec) (*component.Animation, error) {
	defs := make(map[component.AnimationID]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		id, err := ParseAnimationID(name)
		if err != nil {
			return nil, err
		}
		if len(def.Frames) == 0 {
			return nil, fmt.Errorf("animation %q has no frames", name)
		}
		defs[id] = component.AnimationDef{
			Frames: append([]int(nil), def.Frames...),
			FPS:    def.FPS,
			Repeat: def.Repeat,
		}
	}
	current, err := ParseAnimationID(spec.Current)
	if err != nil {
		return nil, err
	}
	anim := &component.Animation{Defs: defs}
	anim.Play(current, false)
	return anim, nil
}
