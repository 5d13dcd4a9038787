// Package tui shows the live text scene in a terminal. It ticks the same
// World as the window backend and maps segment offsets onto character rows.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/internal/config"
	"github.com/plus3/livetext/livetext"
	log "github.com/sirupsen/logrus"
)

// waveRows is the height of the wave band; the full amplitude maps onto half
// of it either side of the middle row.
const waveRows = 9

type tickMsg time.Time

// Model is the root bubbletea model for the terminal backend.
type Model struct {
	world    *app.World
	interval time.Duration
	last     time.Time

	width  int
	height int
}

// NewModel creates a model ticking world tps times per second.
func NewModel(world *app.World, tps int) Model {
	return Model{
		world:    world,
		interval: time.Second / time.Duration(tps),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := m.interval.Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.world.Tick(dt)
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	binder := m.world.Binder

	header := headerStyle.Render(fmt.Sprintf("livetext  t=%.1fs", m.world.Clock.Get().Elapsed))

	var metric, pulsing, wave string
	if el, ok := binder.Element(app.MetricID); ok {
		metric = renderSegments(el.Segments)
	}
	if el, ok := binder.Element(app.PulsingID); ok {
		pulsing = renderSegments(el.Segments)
	}
	if el, ok := binder.Element(app.WaveID); ok {
		width := len(el.Segments)
		if m.width > 4 && width > m.width-4 {
			width = m.width - 4
		}
		wave = panelStyle.Render(renderWave(el.Segments[:width], waveRows))
	}

	footer := footerStyle.Render("Static text in the default mono face  (q to quit)")

	return lipgloss.JoinVertical(lipgloss.Left, header, metric, "", pulsing, "", wave, footer)
}

// renderSegments draws segments inline, each in its own color. Bold marks the
// sans face since terminals have a single typeface.
func renderSegments(segments []livetext.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		style := segmentStyle(seg.Color)
		if seg.Font == livetext.FontSans {
			style = style.Inherit(labelStyle)
		}
		b.WriteString(style.Render(seg.Text))
	}
	return b.String()
}

// waveRow maps a vertical offset onto one of rows lines. Zero is the middle
// row and ±WaveAmplitude the outer rows; larger offsets are clamped.
func waveRow(y float64, rows int) int {
	half := (rows - 1) / 2
	row := half + int(math.Round(y/livetext.WaveAmplitude*float64(half)))
	return max(0, min(rows-1, row))
}

// renderWave places each segment's first rune in its own column, on the row
// given by its offset, and colors each column with the segment color.
func renderWave(segments []livetext.Segment, rows int) string {
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, len(segments))
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for i, seg := range segments {
		if seg.Text == "" {
			continue
		}
		glyph := []rune(seg.Text)[0]
		grid[waveRow(seg.Offset.Y(), rows)][i] = segmentStyle(seg.Color).Render(string(glyph))
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// Run shows world in the terminal until the user quits.
func Run(cfg config.Config, world *app.World) error {
	log.WithField("tps", cfg.TPS).Info("Starting terminal backend")

	p := tea.NewProgram(NewModel(world, cfg.TPS), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}
