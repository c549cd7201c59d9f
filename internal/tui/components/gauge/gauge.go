package gauge

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const emptyBraille rune = '⠀'

// Gauge is a braille ring filled clockwise in proportion to a 0-100 score,
// with the score printed in the hollow centre.
type Gauge struct {
	Score      int
	Label      string
	Color      color.Color
	TrackColor color.Color
	TextColor  color.Color
}

type Option func(*Gauge)

func WithLabel(label string) Option {
	return func(g *Gauge) {
		g.Label = label
	}
}

func WithColor(c color.Color) Option {
	return func(g *Gauge) {
		g.Color = c
	}
}

func New(score int, opts ...Option) Gauge {
	g := Gauge{
		Score:      min(max(score, 0), 100),
		Color:      theme.ScoreColor(score),
		TrackColor: theme.ColorBgLight,
		TextColor:  theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellTrack
	cellFill
	cellText
)

func (g Gauge) Render() string {
	canvas := drawille.NewCanvas()

	plotRing(&canvas, 360)
	track := cells(&canvas)

	canvas.Clear()
	plotRing(&canvas, float64(g.Score)*3.6)
	fill := cells(&canvas)

	grid, kinds := merge(track, fill)
	stamp(grid, kinds, strconv.Itoa(g.Score))

	styles := map[cellKind]lipgloss.Style{
		cellTrack: lipgloss.NewStyle().Foreground(g.TrackColor),
		cellFill:  lipgloss.NewStyle().Foreground(g.Color),
		cellText:  lipgloss.NewStyle().Foreground(g.TextColor).Bold(true),
	}

	lines := make([]string, len(grid))
	for i := range grid {
		lines[i] = renderRow(grid[i], kinds[i], styles)
	}
	ring := strings.Join(lines, "\n")

	if g.Label == "" {
		return ring
	}
	label := lipgloss.NewStyle().
		Foreground(g.Color).
		Bold(true).
		Width(ringDots / 2).
		Align(lipgloss.Center).
		Render(g.Label)
	return lipgloss.JoinVertical(lipgloss.Center, ring, label)
}

// merge ORs the fill dots onto the track. A cell with any fill dot takes the
// fill colour.
func merge(track, fill [][]rune) ([][]rune, [][]cellKind) {
	grid := make([][]rune, len(track))
	kinds := make([][]cellKind, len(track))
	for i := range track {
		grid[i] = make([]rune, len(track[i]))
		kinds[i] = make([]cellKind, len(track[i]))
		for j, t := range track[i] {
			f := fill[i][j]
			switch {
			case f != emptyBraille:
				grid[i][j] = orBraille(t, f)
				kinds[i][j] = cellFill
			case t != emptyBraille:
				grid[i][j] = t
				kinds[i][j] = cellTrack
			default:
				grid[i][j] = ' '
			}
		}
	}
	return grid, kinds
}

// stamp writes text centred on the middle row.
func stamp(grid [][]rune, kinds [][]cellKind, text string) {
	if len(grid) == 0 {
		return
	}
	var (
		row   = len(grid) / 2
		runes = []rune(text)
		start = (len(grid[row]) - len(runes)) / 2
	)
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= len(grid[row]) {
			continue
		}
		grid[row][col] = r
		kinds[row][col] = cellText
	}
}

// renderRow styles consecutive cells of the same kind together.
func renderRow(row []rune, kinds []cellKind, styles map[cellKind]lipgloss.Style) string {
	var b strings.Builder
	for start := 0; start < len(row); {
		end := start + 1
		for end < len(row) && kinds[end] == kinds[start] {
			end++
		}
		run := string(row[start:end])
		if style, ok := styles[kinds[start]]; ok {
			run = style.Render(run)
		}
		b.WriteString(run)
		start = end
	}
	return b.String()
}

func orBraille(a, b rune) rune {
	return emptyBraille | (a - emptyBraille) | (b - emptyBraille)
}
