package system

import (
	"testing"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

func newAnimated(t *testing.T, def component.AnimationDef) (*ecs.World, *component.Animation, *component.Sprite) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{Defs: map[component.AnimationID]component.AnimationDef{component.AnimationMovingRight: def}}
	anim.Play(component.AnimationMovingRight, false)
	sprite := &component.Sprite{}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatal(err)
	}
	return w, anim, sprite
}

func TestAnimationSystemFrames(t *testing.T) {
	tests := []struct {
		name        string
		def         component.AnimationDef
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		{"first_frame", component.AnimationDef{Frames: []int{5, 6, 7, 8}, FPS: 10, Repeat: component.RepeatForever}, 1, 5, true},
		{"second_frame", component.AnimationDef{Frames: []int{5, 6, 7, 8}, FPS: 10, Repeat: component.RepeatForever}, 6, 6, true},
		{"loops", component.AnimationDef{Frames: []int{5, 6, 7, 8}, FPS: 10, Repeat: component.RepeatForever}, 24, 5, true},
		{"play_once_holds_last", component.AnimationDef{Frames: []int{0, 1}, FPS: 20, Repeat: 0}, 30, 1, false},
		{"repeat_once", component.AnimationDef{Frames: []int{0, 1}, FPS: 20, Repeat: 1}, 9, 1, true},
		{"single_frame", component.AnimationDef{Frames: []int{4}, FPS: 20, Repeat: 0}, 10, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, anim, sprite := newAnimated(t, tc.def)
			sys := NewAnimationSystem()
			for i := 0; i < tc.ticks; i++ {
				sys.Update(w)
			}
			if sprite.Frame != tc.wantFrame {
				t.Fatalf("frame = %d, want %d", sprite.Frame, tc.wantFrame)
			}
			if anim.Playing != tc.wantPlaying {
				t.Fatalf("playing = %v, want %v", anim.Playing, tc.wantPlaying)
			}
		})
	}
}

func TestPlayIgnoreIfPlaying(t *testing.T) {
	_, anim, _ := newAnimated(t, component.AnimationDef{Frames: []int{5, 6}, FPS: 10, Repeat: component.RepeatForever})
	anim.Frame = 1

	anim.Play(component.AnimationMovingRight, true)
	if anim.Frame != 1 {
		t.Fatalf("ignore-if-playing restarted the clip")
	}
	anim.Play(component.AnimationMovingRight, false)
	if anim.Frame != 0 {
		t.Fatalf("forced play should restart the clip")
	}
}
