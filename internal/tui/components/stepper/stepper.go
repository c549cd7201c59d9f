package stepper

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/processing"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const (
	doneNode    = "●"
	pendingNode = "○"
	connector   = "──"
)

type step struct {
	label string
	done  bool
}

// Render draws the three processing milestones as a horizontal stepper.
func Render(s processing.Steps) string {
	var (
		steps = []step{
			{label: "Upload", done: s.Upload},
			{label: "Analyze", done: s.Analyze},
			{label: "Score", done: s.Score},
		}
		doneStyle    = lipgloss.NewStyle().Foreground(theme.ColorPrimary).Bold(true)
		pendingStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
		parts        = make([]string, 0, len(steps)*2-1)
	)

	for i, st := range steps {
		if i > 0 {
			style := pendingStyle
			if st.done {
				style = doneStyle
			}
			parts = append(parts, style.Render(connector))
		}
		if st.done {
			parts = append(parts, doneStyle.Render(doneNode+" "+st.label))
		} else {
			parts = append(parts, pendingStyle.Render(pendingNode+" "+st.label))
		}
	}

	return strings.Join(parts, " ")
}
