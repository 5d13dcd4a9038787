package window

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/internal/layout"
	"github.com/plus3/livetext/livetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var fixedFaces = layout.FacesFunc(func(livetext.FontID, float64) font.Face {
	return basicfont.Face7x13
})

func TestPlaceBottomRight(t *testing.T) {
	segments := []livetext.Segment{
		{Text: "a", Color: colorful.Color{R: 1.5, G: 0.5, B: -1}},
		{Text: "b"},
	}
	placement := app.Placement{
		Anchor: layout.Anchor{Horizontal: layout.EdgeEnd, Vertical: layout.EdgeEnd, X: 5, Y: 5},
	}

	runs := place(segments, fixedFaces, placement, 100, 50)
	require.Len(t, runs, 2)

	assert.Equal(t, 81, runs[0].X)
	assert.Equal(t, 43, runs[0].Y)
	assert.Equal(t, 88, runs[1].X)
	assert.Equal(t, colorful.Color{R: 1, G: 0.5, B: 0}, runs[0].Color, "colors are clamped")
	assert.Equal(t, basicfont.Face7x13, runs[1].Face)
}

func TestPlaceWaveOffsets(t *testing.T) {
	segments := make([]livetext.Segment, 3)
	for i := range segments {
		segments[i] = livetext.Segment{Text: "0"}
	}
	wave := livetext.NewTextElement(1, segments...)
	livetext.UpdateWaveOffsets(wave, 0.5)

	runs := place(wave.Segments, fixedFaces, app.Placement{}, 100, 100)
	require.Len(t, runs, 3)
	for i, run := range runs {
		want := int(11 + livetext.WaveOffset(0.5, i).Y())
		assert.Equal(t, want, run.Y)
	}
}

func TestFrameTime(t *testing.T) {
	g := &Game{tps: 50}
	start := time.Unix(100, 0)

	assert.Equal(t, 0.02, g.frameTime(start))
	assert.InDelta(t, 0.25, g.frameTime(start.Add(250*time.Millisecond)), 1e-12)
	assert.Zero(t, g.frameTime(start.Add(250*time.Millisecond)))
}
