package gauge

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	drawille "github.com/exrook/drawille-go"
)

func countDots(grid [][]rune) int {
	var n int
	for _, row := range grid {
		for _, r := range row {
			if r >= emptyBraille && r <= '⣿' {
				n += popcount(r - emptyBraille)
			}
		}
	}
	return n
}

func popcount(v rune) int {
	var n int
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

func TestPlotRing_FillGrowsWithSweep(t *testing.T) {
	t.Parallel()

	var prev int
	for _, sweep := range []float64{0, 36, 90, 180, 270, 360} {
		c := drawille.NewCanvas()
		plotRing(&c, sweep)
		n := countDots(cells(&c))
		if n < prev {
			t.Errorf("sweep %.0f: %d dots, fewer than %d at smaller sweep", sweep, n, prev)
		}
		prev = n
	}
	if prev == 0 {
		t.Fatal("full ring plotted no dots")
	}
}

func TestPlotRing_ZeroSweepIsEmpty(t *testing.T) {
	t.Parallel()

	c := drawille.NewCanvas()
	plotRing(&c, 0)
	if n := countDots(cells(&c)); n != 0 {
		t.Errorf("zero sweep plotted %d dots", n)
	}
}

func TestAngleFromTop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{name: "top", dx: 0, dy: -1, want: 0},
		{name: "right", dx: 1, dy: 0, want: 90},
		{name: "bottom", dx: 0, dy: 1, want: 180},
		{name: "left", dx: -1, dy: 0, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := angleFromTop(tt.dx, tt.dy); got < tt.want-1e-9 || got > tt.want+1e-9 {
				t.Errorf("angleFromTop(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestOrBraille(t *testing.T) {
	t.Parallel()

	if got := orBraille('⠁', '⠈'); got != '⠉' {
		t.Errorf("orBraille() = %U, want U+2809", got)
	}
	if got := orBraille(emptyBraille, '⣿'); got != '⣿' {
		t.Errorf("orBraille() = %U, want U+28FF", got)
	}
}

func TestGauge_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score int
		label string
		want  string
	}{
		{name: "sample score", score: 72, label: "Good", want: "72"},
		{name: "perfect", score: 100, want: "100"},
		{name: "clamped high", score: 140, want: "100"},
		{name: "clamped low", score: -5, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := ansi.Strip(New(tt.score, WithLabel(tt.label)).Render())
			lines := strings.Split(out, "\n")

			wantLines := ringDots / 4
			if tt.label != "" {
				wantLines++
			}
			if len(lines) != wantLines {
				t.Fatalf("rendered %d lines, want %d", len(lines), wantLines)
			}

			middle := lines[ringDots/8]
			if !strings.Contains(middle, tt.want) {
				t.Errorf("middle row %q does not contain %q", middle, tt.want)
			}
			if tt.label != "" && !strings.Contains(lines[len(lines)-1], tt.label) {
				t.Errorf("last line %q does not contain label %q", lines[len(lines)-1], tt.label)
			}
			for i, l := range lines[:ringDots/4] {
				if w := ansi.StringWidth(l); w != ringDots/2 {
					t.Errorf("line %d width = %d, want %d", i, w, ringDots/2)
				}
			}
		})
	}
}
