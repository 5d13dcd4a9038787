package ecs

// System is a unit of per-frame behavior. Exported Query and Singleton fields
// are wired by the Scheduler on Register; any other fields are the system's
// own state and persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what one scheduler pass hands to each of its systems.
// Commands queued on it are flushed after the last system returns.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
