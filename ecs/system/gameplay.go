package system

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/ecs/entity"
	"github.com/milk9111/starcatcher/prefabs"
)

// Pauser freezes the physics world.
type Pauser interface {
	Pause()
}

// GameplayController owns the rules: scoring, wave resets, the bomb spawn
// policy and the terminal game over transition.
type GameplayController struct {
	spec   *prefabs.SceneSpec
	rng    *rand.Rand
	pauser Pauser
	logger *log.Logger
}

func NewGameplayController(spec *prefabs.SceneSpec, rng *rand.Rand, pauser Pauser, logger *log.Logger) *GameplayController {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameplayController{spec: spec, rng: rng, pauser: pauser, logger: logger}
}

// OnCollect handles the player touching an active star.
func (gc *GameplayController) OnCollect(w *ecs.World, player, star ecs.Entity) {
	if gc == nil || w == nil || !playing(w) {
		return
	}
	s, ok := ecs.Get(w, star, component.StarComponent.Kind())
	if !ok || !s.Active {
		return
	}

	deactivateStar(w, star, s)

	score := gc.addPoint(w)
	w.Events().Push(ecs.Event{Type: ecs.EventStarCollected, Entity: star, Score: score})
	gc.logger.Debug("star collected", "star", s.Index, "score", score)

	if activeStars(w) > 0 {
		return
	}

	waves := gc.clearWave(w)
	w.Events().Push(ecs.Event{Type: ecs.EventWaveCleared, Score: score})

	bomb, x, y := gc.spawnBomb(w, player, waves)
	if bomb.Valid() {
		w.Events().Push(ecs.Event{Type: ecs.EventBombSpawned, Entity: bomb, X: x, Y: y})
	}
	gc.logger.Info("wave cleared", "wave", waves, "score", score, "bomb_x", x)
}

// OnHazardHit ends the game. Later calls are no-ops.
func (gc *GameplayController) OnHazardHit(w *ecs.World, player, bomb ecs.Entity) {
	if gc == nil || w == nil {
		return
	}
	session, ok := sessionOf(w)
	if !ok || session.Over() {
		return
	}

	session.State = component.GameOver
	if gc.pauser != nil {
		gc.pauser.Pause()
	}

	if tint, ok := ecs.Get(w, player, component.TintComponent.Kind()); ok {
		tint.Mode = component.TintAlert
	}
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		anim.Play(component.AnimationIdle, false)
	}

	score := currentScore(w)
	w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Entity: bomb, Score: score})
	gc.logger.Info("game over", "score", score)
}

func deactivateStar(w *ecs.World, e ecs.Entity, s *component.Star) {
	s.Active = false
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Disabled = true
	}
}

func (gc *GameplayController) addPoint(w *ecs.World) int {
	e, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	score, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	score.Collected++
	value := score.Value()
	if label, ok := ecs.Get(w, e, component.LabelComponent.Kind()); ok {
		label.Text = entity.ScoreText(score.Prefix, value)
	}
	return value
}

func currentScore(w *ecs.World) int {
	e, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	score, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	return score.Value()
}

func activeStars(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.StarComponent.Kind(), func(_ ecs.Entity, s *component.Star) {
		if s.Active {
			n++
		}
	})
	return n
}

// clearWave puts every star back at its home with zero velocity and returns
// the number of cleared waves so far.
func (gc *GameplayController) clearWave(w *ecs.World) int {
	ecs.ForEach(w, component.StarComponent.Kind(), func(e ecs.Entity, s *component.Star) {
		s.Active = true
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = s.HomeX
			t.Y = s.HomeY
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.X = 0
			vel.Y = 0
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = false
		}
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body.Disabled = false
			body.Reposition = true
		}
	})

	e, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	score, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	score.Waves++
	return score.Waves
}

// spawnBomb drops one bomb on the half of the world opposite the player.
func (gc *GameplayController) spawnBomb(w *ecs.World, player ecs.Entity, wave int) (ecs.Entity, float64, float64) {
	bombs := gc.spec.Bombs
	width := gc.spec.World.Width

	px := 0.0
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		px = t.X
	}

	var x float64
	if px < bombs.SplitX {
		x = bombs.SplitX + gc.rng.Float64()*(width-bombs.SplitX)
	} else {
		x = gc.rng.Float64() * bombs.SplitX
	}
	y := bombs.SpawnY
	vx := float64(gc.rng.IntN(2*bombs.MaxSpeedX+1) - bombs.MaxSpeedX)

	e, err := entity.NewBomb(w, bombs, x, y, vx, bombs.FallSpeed, wave)
	if err != nil {
		gc.logger.Error("spawn bomb", "wave", wave, "err", err)
		return 0, x, y
	}
	return e, x, y
}
