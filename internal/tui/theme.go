package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorText    = lipgloss.Color("#e6edf3")
	colorTextDim = lipgloss.Color("#8b949e")
	colorBlue    = lipgloss.Color("#58a6ff")
	colorDivider = lipgloss.Color("#30363d")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)
)

// segmentStyle colors terminal text with a segment's color.
func segmentStyle(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
}
