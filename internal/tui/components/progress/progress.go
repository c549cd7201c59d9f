package progress

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const (
	fullBlock  = "█"
	emptyBlock = "░"
)

type Bar struct {
	Percent    float64 // 0-100
	Width      int     // cells, excluding the percentage label
	Color      color.Color
	TrackColor color.Color
}

func New(percent float64, width int) Bar {
	return Bar{
		Percent:    percent,
		Width:      width,
		Color:      theme.ColorPrimary,
		TrackColor: theme.ColorBgLight,
	}
}

// Filled is the number of bar cells to draw as complete.
func (b Bar) Filled() int {
	if b.Width <= 0 {
		return 0
	}
	p := min(max(b.Percent, 0), 100)
	return int(math.Floor(p / 100 * float64(b.Width)))
}

// Label is the percentage rounded to the nearest whole number.
func (b Bar) Label() string {
	return fmt.Sprintf("%d%%", int(math.Round(min(max(b.Percent, 0), 100))))
}

func (b Bar) Render() string {
	filled := b.Filled()
	bar := lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat(fullBlock, filled)) +
		lipgloss.NewStyle().Foreground(b.TrackColor).Render(strings.Repeat(emptyBlock, max(b.Width-filled, 0)))

	label := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Width(5).
		Align(lipgloss.Right).
		Render(b.Label())

	return bar + label
}
