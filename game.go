package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/entity"
	"github.com/milk9111/starcatcher/ecs/render"
	"github.com/milk9111/starcatcher/ecs/system"
	"github.com/milk9111/starcatcher/prefabs"
)

type Game struct {
	debug  bool
	logger *log.Logger

	world     *ecs.World
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem

	images  *render.Registry
	sprites *render.SpriteRenderer
	hud     *render.HUD
	watcher *prefabs.Watcher
}

type gameOptions struct {
	seed   uint64
	debug  bool
	watch  bool
	logger *log.Logger
}

func NewGame(opts gameOptions) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	sprites, err := prefabs.LoadSpritesSpec()
	if err != nil {
		return nil, err
	}

	images := render.NewRegistry()
	if err := render.BuildImages(sprites, images); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec, rng)
	if err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem(spec.World.Gravity)
	controller := system.NewGameplayController(spec, rng, physics, opts.logger)
	system.RegisterSceneColliders(physics, controller)

	g := &Game{
		debug:   opts.debug,
		logger:  opts.logger,
		world:   world,
		scene:   scene,
		physics: physics,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(keyboard{}),
			system.NewPlayerControllerSystem(),
			physics,
			system.NewAnimationSystem(),
		),
		images:  images,
		sprites: render.NewSpriteRenderer(images, spec.World.Background),
		hud:     render.NewHUD(spec.Score.X, spec.Score.Y),
	}

	if opts.watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		g.watcher = watcher
	}

	g.logger.Info("scene ready", "seed", opts.seed, "stars", len(scene.Stars), "platforms", len(scene.Platforms))
	return g, nil
}

func (g *Game) Update() error {
	g.reloadSprites()

	g.scheduler.Update(g.world)
	g.hud.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventGameOver:
			g.logger.Warn("hit by bomb", "score", evt.Score)
		case ecs.EventBombSpawned:
			g.logger.Debug(evt.Type.String(), "x", evt.X, "y", evt.Y)
		default:
			g.logger.Debug(evt.Type.String(), "entity", evt.Entity, "score", evt.Score)
		}
	}
	return nil
}

// reloadSprites redraws the procedural art when sprites.yaml changes on disk.
func (g *Game) reloadSprites() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != prefabs.SpritesFile {
				continue
			}
			spec, err := prefabs.LoadSpritesSpec()
			if err == nil {
				err = render.BuildImages(spec, g.images)
			}
			if err != nil {
				g.logger.Error("reload sprites", "err", err)
				continue
			}
			g.logger.Info("sprites reloaded", "images", g.images.Len())
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Error("watch prefabs", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sprites.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.debug {
		render.DrawPhysicsDebug(g.physics.Space(), screen)
		render.DrawStats(g.world, screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Spec.World.Width), int(g.scene.Spec.World.Height)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
