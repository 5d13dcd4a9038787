package ecs

// Commands buffers work that must not run while systems are iterating.
// Buffered spawns and deferred functions run when the frame is flushed.
type Commands struct {
	spawns []spawnCommand
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Flush applies all buffered spawns, then runs deferred functions in the
// order they were queued, and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, cmd := range c.spawns {
		storage.Spawn(cmd.components...)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
