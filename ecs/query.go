package ecs

import (
	"iter"
	"unsafe"
)

// Query is a View that snapshots its matches once per frame. Execute
// collects every matching entity into flat slices; Iter and Values then walk
// those slices without touching archetypes again. Systems receive their
// Query fields already executed.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	// matching archetypes, refreshed whenever a new archetype appears
	archetypes     []*Archetype
	archetypeCount int

	entities   []EntityId
	components []T
	executed   bool
}

// NewQuery creates a Query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the Query to storage and drops any snapshot. The Scheduler calls
// it for every Query field of a registered system.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.archetypeCount = -1
	q.executed = false
}

func (q *Query[T]) refreshArchetypes() {
	if len(q.storage.archetypes) == q.archetypeCount {
		return
	}
	q.archetypeCount = len(q.storage.archetypes)

	q.archetypes = q.archetypes[:0]
	for _, archetype := range q.storage.GetArchetypes() {
		if q.view.matchesArchetype(archetype) {
			q.archetypes = append(q.archetypes, archetype)
		}
	}
}

func (q *Query[T]) collect(archetype *Archetype) {
	if len(archetype.storages) == 0 {
		return
	}

	storageIndices := q.view.buildStorageIndices(archetype)

	var result T
	resultPtr := unsafe.Pointer(&result)

	for entityIndex := range archetype.storages[0].Iter() {
		if !q.view.populateResult(resultPtr, archetype, entityIndex, storageIndices) {
			continue
		}
		q.entities = append(q.entities, NewEntityId(archetype.id, uint32(entityIndex)))
		q.components = append(q.components, result)
	}
}

// Execute rebuilds the snapshot. Entities come out grouped by archetype in
// archetype ID order, and in spawn order within an archetype.
func (q *Query[T]) Execute() {
	q.refreshArchetypes()

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, archetype := range q.archetypes {
		q.collect(archetype)
	}

	q.executed = true
}

func (q *Query[T]) mustBeExecuted(method string) {
	if !q.executed {
		panic("Query." + method + "() called before Query.Execute()")
	}
}

// Len is the number of entities in the last snapshot.
func (q *Query[T]) Len() int {
	q.mustBeExecuted("Len")
	return len(q.entities)
}

// Iter yields entity IDs with their components from the last snapshot.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeExecuted("Iter")

	return func(yield func(EntityId, T) bool) {
		for i, id := range q.entities {
			if !yield(id, q.components[i]) {
				return
			}
		}
	}
}

// Values yields only the components from the last snapshot.
func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeExecuted("Values")

	return func(yield func(T) bool) {
		for _, item := range q.components {
			if !yield(item) {
				return
			}
		}
	}
}
