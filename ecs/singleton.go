package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton is a typed handle to the one value of type T stored outside any
// archetype, such as a clock, a metric feed or a font cache. Every handle to
// the same T points at the same value.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns a handle to the T singleton, adding it first if
// storage has none. A new singleton takes the first initializer, or the zero
// value. An existing singleton is left as it is.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the handle to storage. The Scheduler calls it for every
// Singleton field of a registered system.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.resolve()
}

func (s *Singleton[T]) resolve() {
	if s.ptr != nil || s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.dataPtr
	}
}

// Get returns the singleton, or nil if it has not been added yet.
func (s *Singleton[T]) Get() *T {
	s.resolve()
	return (*T)(s.ptr)
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	s.resolve()
	return s.ptr != nil
}
