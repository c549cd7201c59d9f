package progress

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
		wantLabel  string
	}{
		{name: "empty", percent: 0, width: 40, wantFilled: 0, wantLabel: "0%"},
		{name: "rounds down cells", percent: 14.9, width: 40, wantFilled: 5, wantLabel: "15%"},
		{name: "rounds label half up", percent: 42.5, width: 40, wantFilled: 17, wantLabel: "43%"},
		{name: "complete", percent: 100, width: 40, wantFilled: 40, wantLabel: "100%"},
		{name: "clamped", percent: 130, width: 10, wantFilled: 10, wantLabel: "100%"},
		{name: "negative", percent: -3, width: 10, wantFilled: 0, wantLabel: "0%"},
		{name: "no width", percent: 50, width: 0, wantFilled: 0, wantLabel: "50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := New(tt.percent, tt.width)
			if got := b.Filled(); got != tt.wantFilled {
				t.Errorf("Filled() = %d, want %d", got, tt.wantFilled)
			}
			if got := b.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}

			out := ansi.Strip(b.Render())
			if got := strings.Count(out, fullBlock); got != tt.wantFilled {
				t.Errorf("rendered %d filled cells, want %d", got, tt.wantFilled)
			}
			if !strings.HasSuffix(strings.TrimSpace(out), tt.wantLabel) {
				t.Errorf("Render() = %q, want suffix %q", out, tt.wantLabel)
			}
		})
	}
}
