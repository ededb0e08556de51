package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/ecs/entity"
	"github.com/milk9111/starcatcher/prefabs"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	w          *ecs.World
	scene      *entity.Scene
	physics    *PhysicsSystem
	controller *GameplayController
	keys       map[Direction]bool
	scheduler  *ecs.Scheduler
}

func newFixture(t *testing.T, seed uint64) *fixture {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec()
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(seed, seed+1))
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec, rng)
	require.NoError(t, err)

	physics := NewPhysicsSystem(spec.World.Gravity)
	controller := NewGameplayController(spec, rng, physics, nil)
	RegisterSceneColliders(physics, controller)

	f := &fixture{
		w:          w,
		scene:      scene,
		physics:    physics,
		controller: controller,
		keys:       map[Direction]bool{},
	}
	f.scheduler = ecs.NewScheduler(
		NewInputSystem(KeySourceFunc(func(d Direction) bool { return f.keys[d] })),
		NewPlayerControllerSystem(),
		physics,
		NewAnimationSystem(),
	)
	return f
}

func (f *fixture) hold(dirs ...Direction) {
	clear(f.keys)
	for _, d := range dirs {
		f.keys[d] = true
	}
}

func (f *fixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.scheduler.Update(f.w)
	}
}

func (f *fixture) score() int {
	score, _ := ecs.Get(f.w, f.scene.Score, component.ScoreComponent.Kind())
	return score.Value()
}

func (f *fixture) label() string {
	label, _ := ecs.Get(f.w, f.scene.Score, component.LabelComponent.Kind())
	return label.Text
}

func (f *fixture) state() component.GameState {
	s, _ := ecs.Get(f.w, f.scene.Session, component.SessionComponent.Kind())
	return s.State
}

func (f *fixture) bombs() []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(f.w, component.BombComponent.Kind(), func(e ecs.Entity, _ *component.Bomb) {
		out = append(out, e)
	})
	return out
}

func (f *fixture) player() (*component.Transform, *component.Velocity) {
	t, _ := ecs.Get(f.w, f.scene.Player, component.TransformComponent.Kind())
	v, _ := ecs.Get(f.w, f.scene.Player, component.VelocityComponent.Kind())
	return t, v
}

func (f *fixture) collectAll() {
	for _, s := range f.scene.Stars {
		f.controller.OnCollect(f.w, f.scene.Player, s)
	}
}
