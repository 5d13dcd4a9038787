package livetext

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// WaveAmplitude is the peak vertical displacement of a wave segment.
	WaveAmplitude = 40.0
	// WaveCycle is the length of one wave period in seconds.
	WaveCycle = 2.0
	// WaveLag is the phase delay between neighbouring segments.
	WaveLag = 0.1
)

// PulsingColor returns the color of a pulsing element at elapsed time t.
// Each channel is an independent sinusoid mapped into [0,1].
func PulsingColor(t float64) colorful.Color {
	return colorful.Color{
		R: math.Sin(1.25*t)/2 + 0.5,
		G: math.Sin(0.75*t)/2 + 0.5,
		B: math.Sin(0.50*t)/2 + 0.5,
	}
}

// FormatMetric renders a metric sample with two decimal places.
func FormatMetric(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WavePhase returns the phase of segment i at elapsed time t, in [0, WaveCycle).
func WavePhase(t float64, i int) float64 {
	phase := math.Mod(t+float64(i)*WaveLag, WaveCycle)
	if phase < 0 {
		phase += WaveCycle
	}
	return phase
}

// WaveOffset returns the display offset of segment i at elapsed time t.
func WaveOffset(t float64, i int) mgl64.Vec2 {
	return mgl64.Vec2{0, math.Sin(WavePhase(t, i)*math.Pi) * WaveAmplitude}
}

// UpdatePulsingColor recolors the first segment of el and returns the color.
func UpdatePulsingColor(el *TextElement, elapsed float64) colorful.Color {
	c := PulsingColor(elapsed)
	if len(el.Segments) > 0 {
		el.Segments[0].Color = c
	}
	return c
}

// UpdateMetricText writes sample into the value segment of el. When ok is
// false the previous value is left on screen.
func UpdateMetricText(el *TextElement, sample float64, ok bool) {
	if !ok || len(el.Segments) < 2 {
		return
	}
	el.Segments[1].Text = FormatMetric(sample)
}

// UpdateWaveOffsets displaces every segment of el along a traveling wave.
func UpdateWaveOffsets(el *TextElement, elapsed float64) {
	for i := range el.Segments {
		el.Segments[i].Offset = WaveOffset(elapsed, i)
	}
}
