package app

import (
	"testing"

	"github.com/plus3/livetext/livetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestFrameMetricsEmpty(t *testing.T) {
	var m FrameMetrics

	_, ok := m.SmoothedSample()
	assert.False(t, ok)

	m.Record(0)
	m.Record(-1)
	_, ok = m.SmoothedSample()
	assert.False(t, ok)
	assert.Empty(t, m.History())
}

func TestFrameMetricsAverage(t *testing.T) {
	var m FrameMetrics
	m.Record(0.01)
	m.Record(0.03)

	fps, ok := m.SmoothedSample()
	require.True(t, ok)
	assert.InDelta(t, 50.0, fps, 1e-9)
	assert.InDeltaSlice(t, []float32{10, 30}, m.History(), 1e-4)
}

func TestFrameMetricsWindowRolls(t *testing.T) {
	var m FrameMetrics
	for range frameHistory {
		m.Record(1)
	}
	for range frameHistory {
		m.Record(0.5)
	}
	m.Record(0.25)

	fps, ok := m.SmoothedSample()
	require.True(t, ok)
	want := float64(frameHistory) / (0.5*float64(frameHistory-1) + 0.25)
	assert.InDelta(t, want, fps, 1e-9)

	history := m.History()
	require.Len(t, history, frameHistory)
	assert.Equal(t, float32(500), history[0])
	assert.Equal(t, float32(250), history[frameHistory-1])
}

func TestFontBookCachesFaces(t *testing.T) {
	book, err := LoadFontBook()
	require.NoError(t, err)

	mono := book.Face(livetext.FontMono, 40)
	assert.Same(t, mono, book.Face(livetext.FontMono, 40))
	assert.NotSame(t, mono, book.Face(livetext.FontSans, 40))

	metrics := mono.Metrics()
	assert.Greater(t, metrics.Ascent.Ceil(), 20)
}

func TestFontBookFallback(t *testing.T) {
	book, err := LoadFontBook()
	require.NoError(t, err)

	assert.Equal(t, basicfont.Face7x13, book.Face(livetext.FontID(99), 12))
	assert.Equal(t, basicfont.Face7x13, book.Face(livetext.FontMono, 0))
}
