package ecs

import "iter"

// iComponentStorage is a type-erased column of components within an archetype.
type iComponentStorage interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}
