package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component store in the world. Zero is never
// handed out.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key for one component store. The world looks
// stores up by ID and the type parameter keeps Get and Add honest.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates the next ID. Call it once per component type,
// at package init.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether the kind came from NewComponentKind.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is what the package-level vars such as TransformComponent
// hold; systems reach the kind through Kind().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
