package system

import (
	"testing"

	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

func TestInputSystemCopiesKeys(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	input := &component.Input{Left: true}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
		t.Fatal(err)
	}

	held := map[Direction]bool{DirectionRight: true, DirectionDown: true}
	NewInputSystem(KeySourceFunc(func(d Direction) bool { return held[d] })).Update(w)

	want := component.Input{Right: true, Down: true}
	if *input != want {
		t.Fatalf("got %+v, want %+v", *input, want)
	}
}

func TestInputSystemWithoutSource(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	input := &component.Input{Up: true}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
		t.Fatal(err)
	}

	NewInputSystem(nil).Update(w)
	if !input.Up {
		t.Fatalf("input without a key source should be left alone")
	}
	var f KeySourceFunc
	if f.Pressed(DirectionUp) {
		t.Fatalf("nil KeySourceFunc should report nothing held")
	}
}
