package ecs_test

import "github.com/plus3/livetext/ecs"

// Common test component types
type Cursor struct {
	X, Y float32
}

type Drift struct {
	DX, DY float32
}

type Label struct {
	Text string
}

type Opacity float32

type Glyphs struct {
	Runes []rune
}

type Clock struct {
	Elapsed float64
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Cursor](registry)
	ecs.RegisterComponent[Drift](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Opacity](registry)
	ecs.RegisterComponent[Glyphs](registry)
	ecs.RegisterComponent[int32](registry)
	ecs.RegisterComponent[string](registry)
	return registry
}
