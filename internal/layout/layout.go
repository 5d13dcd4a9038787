// Package layout positions the segments of a text element for drawing.
//
// Layout is pure: it needs font metrics but never touches a screen, so the
// window and terminal backends and the tests share it. Segment offsets are
// applied after line layout and do not affect the block's bounds.
package layout

import (
	"strings"

	"github.com/plus3/livetext/livetext"
	"golang.org/x/image/font"
)

// Faces resolves a segment's font and size to a face.
type Faces interface {
	Face(id livetext.FontID, size float64) font.Face
}

// FacesFunc adapts a function to Faces.
type FacesFunc func(id livetext.FontID, size float64) font.Face

func (f FacesFunc) Face(id livetext.FontID, size float64) font.Face { return f(id, size) }

type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Run is one line-fragment of a segment, positioned relative to the block's
// top-left corner. Y is the baseline.
type Run struct {
	Segment int
	Text    string
	Face    font.Face
	X, Y    float64
}

// Block is a laid-out text element.
type Block struct {
	Runs   []Run
	Width  float64
	Height float64
}

type line struct {
	first   int
	width   float64
	ascent  float64
	descent float64
}

// Lay splits segments into lines at '\n', measures every fragment with its
// face and places lines top to bottom.
func Lay(segments []livetext.Segment, faces Faces, justify Justify) Block {
	var block Block
	lines := []line{{}}

	for i := range segments {
		seg := &segments[i]
		face := faces.Face(seg.Font, seg.FontSize)
		metrics := face.Metrics()
		ascent := float64(metrics.Ascent.Ceil())
		descent := float64(metrics.Descent.Ceil())

		for j, part := range strings.Split(seg.Text, "\n") {
			if j > 0 {
				lines = append(lines, line{first: len(block.Runs)})
			}
			cur := &lines[len(lines)-1]
			cur.ascent = max(cur.ascent, ascent)
			cur.descent = max(cur.descent, descent)

			if part == "" {
				continue
			}
			block.Runs = append(block.Runs, Run{
				Segment: i,
				Text:    part,
				Face:    face,
				X:       cur.width,
			})
			cur.width += float64(font.MeasureString(face, part).Round())
		}
	}

	for _, l := range lines {
		block.Width = max(block.Width, l.width)
	}

	top := 0.0
	for n, l := range lines {
		end := len(block.Runs)
		if n+1 < len(lines) {
			end = lines[n+1].first
		}

		shift := 0.0
		switch justify {
		case JustifyCenter:
			shift = (block.Width - l.width) / 2
		case JustifyRight:
			shift = block.Width - l.width
		}

		baseline := top + l.ascent
		for r := l.first; r < end; r++ {
			run := &block.Runs[r]
			off := segments[run.Segment].Offset
			run.X += shift + off.X()
			run.Y = baseline + off.Y()
		}
		top += l.ascent + l.descent
	}
	block.Height = top

	return block
}

// Edge selects which side of the screen an anchor measures from.
type Edge int

const (
	EdgeStart Edge = iota // left or top
	EdgeEnd               // right or bottom
)

// Anchor places a block at a fixed margin from two screen edges.
type Anchor struct {
	Horizontal Edge
	Vertical   Edge
	X, Y       float64
}

// Origin returns the screen position of the block's top-left corner.
func (a Anchor) Origin(b Block, screenW, screenH int) (float64, float64) {
	x, y := a.X, a.Y
	if a.Horizontal == EdgeEnd {
		x = float64(screenW) - a.X - b.Width
	}
	if a.Vertical == EdgeEnd {
		y = float64(screenH) - a.Y - b.Height
	}
	return x, y
}
