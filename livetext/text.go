// Package livetext keeps on-screen text synchronized with time-varying state.
//
// A TextElement is an ordered run of styled Segments. Each element is bound to
// a Binder under exactly one Role, and every tick the Binder recomputes the
// fields that role derives from the clock and the metric feed. Nothing here
// draws; a renderer reads the segments after each tick.
package livetext

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// ElementID identifies a TextElement within a Binder.
type ElementID uint64

// FontID names a typeface resolved by the host's font loader.
type FontID int

const (
	FontSans FontID = iota
	FontMono
)

func (f FontID) String() string {
	switch f {
	case FontSans:
		return "sans"
	case FontMono:
		return "mono"
	default:
		return "unknown"
	}
}

// Segment is one styled run of text within a TextElement.
type Segment struct {
	Text     string
	Color    colorful.Color
	FontSize float64
	Font     FontID
	Offset   mgl64.Vec2
}

// TextElement is an identified, ordered sequence of segments. Segment order is
// meaningful: for metric elements index 0 is the label and index 1 the value.
type TextElement struct {
	ID       ElementID
	Segments []Segment
}

// NewTextElement creates an element from the given segments.
func NewTextElement(id ElementID, segments ...Segment) *TextElement {
	return &TextElement{
		ID:       id,
		Segments: segments,
	}
}

// String returns the concatenated text of all segments.
func (e *TextElement) String() string {
	n := 0
	for i := range e.Segments {
		n += len(e.Segments[i].Text)
	}
	buf := make([]byte, 0, n)
	for i := range e.Segments {
		buf = append(buf, e.Segments[i].Text...)
	}
	return string(buf)
}

// Role selects the update rule applied to an element each tick.
type Role int

const (
	RoleMetric Role = iota
	RolePulsingColor
	RoleWaveAnimated
)

func (r Role) String() string {
	switch r {
	case RoleMetric:
		return "metric"
	case RolePulsingColor:
		return "pulsing-color"
	case RoleWaveAnimated:
		return "wave-animated"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r >= RoleMetric && r <= RoleWaveAnimated
}
