package results

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

var now = time.Date(2025, 4, 22, 10, 0, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	t.Parallel()

	stored := scan.Sample("stored", "/tmp/r.png", now.Add(-time.Hour))
	stored.Score = 91
	stored.StoreName = "Farmers Market"

	tests := []struct {
		name string
		msg  LoadMsg
		want State
	}{
		{
			name: "stored scan",
			msg:  LoadMsg{ID: "stored", Scan: &stored},
			want: State{Scan: stored},
		},
		{
			name: "missing falls back to sample",
			msg:  LoadMsg{ID: "missing"},
			want: State{Scan: scan.Sample("missing", "", now), Fallback: true},
		},
		{
			name: "error falls back to sample",
			msg:  LoadMsg{ID: "broken", Err: errors.New("db locked")},
			want: State{Scan: scan.Sample("broken", "", now), Fallback: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Resolve(tt.msg, now)); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(View(theme.New(), State{Scan: scan.Sample("id", "", now), Fallback: true}, 120, 80))

	for _, want := range []string{
		"Sustainability Score",
		"72",
		"Good",
		"EcoMart",
		"Items Analysis",
		"Organic Bananas",
		"Reusable Water Bottle + Filter",
		"Grass-Fed Beef",
		"Recommendations",
		"Try plant-based proteins 2-3 times per week",
		"showing sample result",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestState_ScrollClamped(t *testing.T) {
	t.Parallel()

	var (
		th     = theme.New()
		height = 20
		s      = State{Scan: scan.Sample("id", "", now)}
	)

	for range 200 {
		s.ScrollDown(th, height)
	}
	bottom := View(th, s, 120, height)

	s.ScrollDown(th, height)
	if got := View(th, s, 120, height); got != bottom {
		t.Error("view changed after scrolling past the end")
	}

	s.ScrollUp()
	if got := View(th, s, 120, height); got == bottom {
		t.Error("view unchanged after one ScrollUp from the bottom")
	}

	for range 500 {
		s.ScrollUp()
	}
	if s.Offset != 0 {
		t.Errorf("Offset = %d after scrolling to the top, want 0", s.Offset)
	}
}
