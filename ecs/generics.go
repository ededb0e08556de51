package ecs

import "github.com/milk9111/starcatcher/ecs/component"

// Add stores value as e's component of the given kind, replacing any
// previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Get returns a pointer to e's component. Mutations through the pointer are
// visible to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// First returns the earliest-added live entity with the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities carrying the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.store(ka.ID(), false).Entities() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := Get(w, e, kd); ok {
			fn(e, a, b, c, d)
		}
	})
}
