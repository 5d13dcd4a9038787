package app

import (
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/livetext"
)

type ClockSystem struct {
	Clock ecs.Singleton[SimClock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}

type FrameMetricsSystem struct {
	Metrics ecs.Singleton[FrameMetrics]
}

func (s *FrameMetricsSystem) Execute(frame *ecs.UpdateFrame) {
	s.Metrics.Get().Record(frame.DeltaTime)
}

// BindSystem reads the clock and metric feed once and ticks every bound
// element with that input.
type BindSystem struct {
	Clock    ecs.Singleton[SimClock]
	Metrics  ecs.Singleton[FrameMetrics]
	LiveText ecs.Singleton[LiveText]
}

func (s *BindSystem) Execute(frame *ecs.UpdateFrame) {
	s.LiveText.Get().Binder.Tick(livetext.ReadTick(s.Clock.Get(), s.Metrics.Get()))
}
