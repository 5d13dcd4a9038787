// Package window shows the live text scene in an ebiten window.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/internal/layout"
	"github.com/plus3/livetext/livetext"
	"golang.org/x/image/font"
)

var background = color.RGBA{A: 255}

// Screen holds the image being drawn this frame.
type Screen struct {
	Image *ebiten.Image
}

// placedRun is a run in screen coordinates, ready to draw.
type placedRun struct {
	Text  string
	Face  font.Face
	X, Y  int
	Color color.Color
}

func place(segments []livetext.Segment, faces layout.Faces, p app.Placement, screenW, screenH int) []placedRun {
	block := layout.Lay(segments, faces, p.Justify)
	ox, oy := p.Anchor.Origin(block, screenW, screenH)

	runs := make([]placedRun, 0, len(block.Runs))
	for _, run := range block.Runs {
		runs = append(runs, placedRun{
			Text:  run.Text,
			Face:  run.Face,
			X:     int(ox + run.X),
			Y:     int(oy + run.Y),
			Color: segments[run.Segment].Color.Clamped(),
		})
	}
	return runs
}

// RenderSystem draws every bound and static text entity onto the Screen.
type RenderSystem struct {
	Live ecs.Query[struct {
		*app.Text
		*app.Placement
	}]
	Static ecs.Query[struct {
		*app.StaticText
		*app.Placement
	}]

	Screen   ecs.Singleton[Screen]
	LiveText ecs.Singleton[app.LiveText]
	Fonts    ecs.Singleton[app.FontBook]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get().Image
	if screen == nil {
		return
	}
	screen.Fill(background)

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	faces := s.Fonts.Get()
	binder := s.LiveText.Get().Binder

	for item := range s.Live.Values() {
		el, ok := binder.Element(item.Text.ID)
		if !ok {
			continue
		}
		drawRuns(screen, place(el.Segments, faces, *item.Placement, w, h))
	}

	for item := range s.Static.Values() {
		drawRuns(screen, place(item.StaticText.Element.Segments, faces, *item.Placement, w, h))
	}
}

func drawRuns(screen *ebiten.Image, runs []placedRun) {
	for _, run := range runs {
		text.Draw(screen, run.Text, run.Face, run.X, run.Y, run.Color)
	}
}
