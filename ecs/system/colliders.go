package system

import "github.com/milk9111/starcatcher/ecs/component"

// RegisterSceneColliders declares which kinds interact. Any pair not listed
// here passes through each other.
func RegisterSceneColliders(ps *PhysicsSystem, gc *GameplayController) {
	if ps == nil {
		return
	}

	ps.Collide(component.EntityKindPlayer, component.EntityKindPlatform, nil)
	ps.Collide(component.EntityKindBomb, component.EntityKindPlatform, nil)
	ps.Collide(component.EntityKindStar, component.EntityKindPlatform, nil)

	if gc == nil {
		return
	}
	ps.Overlap(component.EntityKindPlayer, component.EntityKindStar, gc.OnCollect)
	ps.Collide(component.EntityKindPlayer, component.EntityKindBomb, gc.OnHazardHit)
}
