package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
	"github.com/milk9111/starcatcher/prefabs"
)

func buildTestScene(t *testing.T) (*ecs.World, *Scene) {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene spec: %v", err)
	}
	w := ecs.NewWorld()
	scene, err := BuildScene(w, spec, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	return w, scene
}

func TestBuildScenePlatforms(t *testing.T) {
	w, scene := buildTestScene(t)

	want := []struct {
		x, y   float64
		scale  float64
		width  float64
		height float64
	}{
		{400, 568, 2, 800, 64},
		{600, 400, 1, 400, 32},
		{50, 250, 1, 400, 32},
		{750, 220, 1, 400, 32},
	}
	if len(scene.Platforms) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(scene.Platforms))
	}
	for i, p := range scene.Platforms {
		tr, ok := ecs.Get(w, p, component.TransformComponent.Kind())
		if !ok {
			t.Fatalf("platform %d missing transform", i)
		}
		if tr.X != want[i].x || tr.Y != want[i].y || tr.ScaleX != want[i].scale || tr.ScaleY != want[i].scale {
			t.Fatalf("platform %d: got %+v", i, tr)
		}
		body, ok := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
		if !ok || !body.Static {
			t.Fatalf("platform %d should be static", i)
		}
		if body.Width != want[i].width || body.Height != want[i].height {
			t.Fatalf("platform %d collider %vx%v", i, body.Width, body.Height)
		}
	}
}

func TestBuildScenePlayer(t *testing.T) {
	w, scene := buildTestScene(t)

	tr, _ := ecs.Get(w, scene.Player, component.TransformComponent.Kind())
	if tr.X != 100 || tr.Y != 450 {
		t.Fatalf("player at (%v, %v)", tr.X, tr.Y)
	}
	player, _ := ecs.Get(w, scene.Player, component.PlayerComponent.Kind())
	if player.MoveSpeed != 200 || player.JumpSpeed != 330 {
		t.Fatalf("unexpected tuning %+v", player)
	}
	body, _ := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
	if !body.CollideWorldBounds || body.Elasticity != 0.2 || body.Static {
		t.Fatalf("unexpected player body %+v", body)
	}
	anim, _ := ecs.Get(w, scene.Player, component.AnimationComponent.Kind())
	if anim.Current != component.AnimationIdle || len(anim.Defs) != 3 {
		t.Fatalf("unexpected animation %+v", anim)
	}
	if frame, _ := anim.SheetFrame(); frame != 4 {
		t.Fatalf("idle should show frame 4, got %d", frame)
	}
}

func TestBuildSceneStars(t *testing.T) {
	w, scene := buildTestScene(t)

	if len(scene.Stars) != 12 {
		t.Fatalf("expected 12 stars, got %d", len(scene.Stars))
	}
	for i, e := range scene.Stars {
		star, ok := ecs.Get(w, e, component.StarComponent.Kind())
		if !ok || !star.Active || star.Index != i {
			t.Fatalf("star %d: %+v", i, star)
		}
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if wantX := 12 + 70*float64(i); tr.X != wantX || tr.Y != 0 {
			t.Fatalf("star %d at (%v, %v), want (%v, 0)", i, tr.X, tr.Y, wantX)
		}
		if star.Bounce < 0.4 || star.Bounce >= 0.8 {
			t.Fatalf("star %d bounce %v out of [0.4, 0.8)", i, star.Bounce)
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if body.Elasticity != star.Bounce {
			t.Fatalf("star %d elasticity %v != bounce %v", i, body.Elasticity, star.Bounce)
		}
	}
}

func TestBuildSceneSessionAndScore(t *testing.T) {
	w, scene := buildTestScene(t)

	session, ok := ecs.Get(w, scene.Session, component.SessionComponent.Kind())
	if !ok || session.State != component.GamePlaying {
		t.Fatalf("session should start playing")
	}
	label, _ := ecs.Get(w, scene.Score, component.LabelComponent.Kind())
	if label.Text != "score: 0" || label.X != 16 || label.Y != 16 {
		t.Fatalf("unexpected label %+v", label)
	}
	score, _ := ecs.Get(w, scene.Score, component.ScoreComponent.Kind())
	if score.Value() != 0 || score.PerStar != 10 {
		t.Fatalf("unexpected score %+v", score)
	}
	if n := ecs.Count(w, component.BombComponent.Kind()); n != 0 {
		t.Fatalf("expected no bombs, got %d", n)
	}
	bounds, _ := ecs.Get(w, scene.Bounds, component.LevelBoundsComponent.Kind())
	if bounds.Width != 800 || bounds.Height != 600 {
		t.Fatalf("unexpected bounds %+v", bounds)
	}
}

func TestBuildSceneRejectsBadInput(t *testing.T) {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name string
		w    *ecs.World
		spec *prefabs.SceneSpec
		rng  *rand.Rand
	}{
		{"nil_world", nil, spec, rng},
		{"nil_spec", ecs.NewWorld(), nil, rng},
		{"nil_rng", ecs.NewWorld(), spec, nil},
		{"no_stars", ecs.NewWorld(), func() *prefabs.SceneSpec { s := *spec; s.Stars.Count = 0; return &s }(), rng},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildScene(tc.w, tc.spec, tc.rng); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseAnimationID(t *testing.T) {
	tests := []struct {
		name    string
		want    component.AnimationID
		wantErr bool
	}{
		{"idle", component.AnimationIdle, false},
		{"turn", component.AnimationIdle, false},
		{"left", component.AnimationMovingLeft, false},
		{"right", component.AnimationMovingRight, false},
		{"jump", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAnimationID(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestNewBombDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewBomb(w, prefabs.BombsSpec{Collider: prefabs.ColliderSpec{Radius: 7}}, 500, 16, -120, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Elasticity != 1 || !body.CollideWorldBounds || body.Radius != 7 {
		t.Fatalf("unexpected bomb body %+v", body)
	}
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if vel.X != -120 || vel.Y != 20 {
		t.Fatalf("unexpected bomb velocity %+v", vel)
	}
}
