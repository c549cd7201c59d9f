package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// ring geometry in braille dots; one cell is 2 dots wide and 4 dots tall
const (
	ringDots      = 40 // 20 cells wide, 10 cells tall
	ringThickness = 4
	// clockwise from 12 o'clock in screen coordinates, where y grows downward
	ringStart = -90.0
)

// plotRing sets every dot of the ring whose angle from 12 o'clock lies within
// sweep degrees. A sweep of 360 draws the full track.
func plotRing(c *drawille.Canvas, sweep float64) {
	if sweep <= 0 {
		return
	}
	var (
		center = float64(ringDots) / 2
		outer  = center - 1
		inner  = outer - ringThickness
	)

	for y := range ringDots {
		for x := range ringDots {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			r := math.Hypot(dx, dy)
			if r > outer || r <= inner {
				continue
			}
			if angleFromTop(dx, dy) <= sweep {
				c.Set(x, y)
			}
		}
	}
}

// angleFromTop returns the clockwise angle in [0, 360) of (dx, dy) measured
// from straight up.
func angleFromTop(dx, dy float64) float64 {
	a := math.Atan2(dy, dx)*180/math.Pi - ringStart
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	return a
}

// cells renders the canvas into exactly ringDots/4 rows of ringDots/2 runes.
// Unset cells are empty braille.
func cells(c *drawille.Canvas) [][]rune {
	var (
		cols = ringDots / 2
		rows = ringDots / 4
		out  = make([][]rune, rows)
	)
	raw := c.Rows(0, 0, ringDots-1, ringDots-1)
	for i := range rows {
		line := make([]rune, cols)
		for j := range line {
			line[j] = emptyBraille
		}
		if i < len(raw) {
			copy(line, []rune(raw[i]))
		}
		out[i] = line
	}
	return out
}
