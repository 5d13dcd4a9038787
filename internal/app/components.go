package app

import (
	"github.com/plus3/livetext/internal/layout"
	"github.com/plus3/livetext/livetext"
)

// Text marks an entity whose content lives in the binder under ID.
type Text struct {
	ID livetext.ElementID
}

// StaticText is an element drawn as-is every frame, outside the binder.
type StaticText struct {
	Element livetext.TextElement
}

// Placement anchors a text entity on screen.
type Placement struct {
	Anchor  layout.Anchor
	Justify layout.Justify
}

// LiveText is the singleton owning the binder.
type LiveText struct {
	Binder *livetext.Binder
}

// SimClock is the simulation clock. Elapsed is the sum of every frame's delta.
type SimClock struct {
	Elapsed float64
}

func (c *SimClock) ElapsedSeconds() float64 {
	return c.Elapsed
}

const frameHistory = 120

// FrameMetrics keeps a rolling window of frame times and reports the frame
// rate over that window.
type FrameMetrics struct {
	samples [frameHistory]float64
	next    int
	count   int
	sum     float64
}

// Record adds one frame time in seconds. Non-positive durations are ignored.
func (m *FrameMetrics) Record(dt float64) {
	if dt <= 0 {
		return
	}
	if m.count == frameHistory {
		m.sum -= m.samples[m.next]
	} else {
		m.count++
	}
	m.samples[m.next] = dt
	m.sum += dt
	m.next = (m.next + 1) % frameHistory
}

// SmoothedSample returns frames per second averaged over the window.
func (m *FrameMetrics) SmoothedSample() (float64, bool) {
	if m.count == 0 || m.sum <= 0 {
		return 0, false
	}
	return float64(m.count) / m.sum, true
}

// History copies the window's frame times, oldest first, in milliseconds.
func (m *FrameMetrics) History() []float32 {
	out := make([]float32, 0, m.count)
	start := (m.next - m.count + frameHistory) % frameHistory
	for i := 0; i < m.count; i++ {
		out = append(out, float32(m.samples[(start+i)%frameHistory]*1000))
	}
	return out
}
