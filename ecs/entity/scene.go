package entity

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

// Scene holds the handles of everything created at startup. Bombs are not
// listed; they are spawned during play and found by component.
type Scene struct {
	Spec *prefabs.SceneSpec

	Session   ecs.Entity
	Bounds    ecs.Entity
	Score     ecs.Entity
	Player    ecs.Entity
	Platforms []ecs.Entity
	Stars     []ecs.Entity
}

// BuildScene creates the fixed layout once: platforms, player, the star pool,
// the score label, the session and the world bounds.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, rng *rand.Rand) (*Scene, error) {
	if w == nil {
		return nil, errors.New("scene: nil world")
	}
	if spec == nil {
		return nil, errors.New("scene: nil spec")
	}
	if rng == nil {
		return nil, errors.New("scene: nil rng")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	scene := &Scene{Spec: spec}
	var err error

	scene.Session, err = spawn(w, "session",
		with(component.SessionComponent.Kind(), &component.Session{State: component.GamePlaying}),
	)
	if err != nil {
		return nil, err
	}

	scene.Bounds, err = spawn(w, "bounds",
		with(component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: spec.World.Width, Height: spec.World.Height}),
	)
	if err != nil {
		return nil, err
	}

	for i, ps := range spec.Platforms {
		p, err := NewPlatform(w, ps)
		if err != nil {
			return nil, fmt.Errorf("scene: platform %d: %w", i, err)
		}
		scene.Platforms = append(scene.Platforms, p)
	}

	scene.Player, err = NewPlayer(w, spec.Player)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	for i := 0; i < spec.Stars.Count; i++ {
		s, err := NewStar(w, spec.Stars, i, rng)
		if err != nil {
			return nil, fmt.Errorf("scene: star %d: %w", i, err)
		}
		scene.Stars = append(scene.Stars, s)
	}

	scene.Score, err = spawn(w, "score",
		with(component.ScoreComponent.Kind(), &component.Score{PerStar: spec.Stars.Points, Prefix: spec.Score.Prefix}),
		with(component.LabelComponent.Kind(), &component.Label{Text: ScoreText(spec.Score.Prefix, 0), X: spec.Score.X, Y: spec.Score.Y}),
	)
	if err != nil {
		return nil, err
	}

	return scene, nil
}

// ScoreText formats the score label.
func ScoreText(prefix string, value int) string {
	return fmt.Sprintf("%s%d", prefix, value)
}
