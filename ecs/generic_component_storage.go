package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T in fixed-size blocks so
// that pointers handed out by Get stay valid as the column grows.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	nextIndex int
}

// Append adds a component to storage and returns its index.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return -1 // Invalid type
	}

	index := cs.nextIndex
	cs.nextIndex++

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
	}

	cs.blocks[blockIdx][slotIdx] = concreteItem
	return index
}

// Get returns a pointer to the component at the given index.
func (cs *genericComponentStorage[T]) Get(index int) any {
	if index < 0 || index >= cs.nextIndex {
		return nil
	}
	return &cs.blocks[index/genericBlockSize][index%genericBlockSize]
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.nextIndex
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
