package system

import (
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

func sessionOf(w *ecs.World) (*component.Session, bool) {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SessionComponent.Kind())
}

// playing is false before the scene exists and after game over.
func playing(w *ecs.World) bool {
	s, ok := sessionOf(w)
	return ok && s.State == component.GamePlaying
}
