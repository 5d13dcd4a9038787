// Package inspector draws a Dear ImGui overlay on top of the window backend.
// Panels are ECS entities; the inspector System queues their render
// functions so they run after every other system has updated the frame.
package inspector

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/app"
	log "github.com/sirupsen/logrus"
)

// Panel is a component holding a Dear ImGui render function.
type Panel struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Backend wraps the ebiten Dear ImGui backend so it can be stored as a
// singleton.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the Dear ImGui context and the ebiten window.
func NewBackend(title string, width, height int) Backend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return Backend{EbitenBackend: backend}
}

// System records the input capture state and defers every Panel's render.
type System struct {
	Panels ecs.Query[struct{ *Panel }]
	Input  ecs.Singleton[InputState]
}

func (s *System) Execute(frame *ecs.UpdateFrame) {
	state := s.Input.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for panel := range s.Panels.Values() {
		frame.Commands.Defer(panel.Render)
	}
}

// Attach adds the inspector's panels, singletons and system to w. The
// returned accessor is used by the game loop to begin and end ImGui frames.
func Attach(w *app.World, backend Backend) *ecs.Singleton[Backend] {
	ecs.RegisterComponent[Panel](w.Registry)

	ecs.NewSingleton[InputState](w.Storage)
	accessor := ecs.NewSingleton[Backend](w.Storage, backend)

	w.Storage.Spawn(Panel{Render: newLiveTextPanel(w.Binder).Render})
	w.Storage.Spawn(Panel{Render: newPerformancePanel(w).Render})

	w.Update.Register(&System{})

	log.Info("Inspector attached")
	return accessor
}
