package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Checked       bool
	Authenticated bool
}

func (a Indicator) Render() string {
	if !a.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorDim).
			Render(statusDot + " checking...")
	}

	if a.Authenticated {
		return lipgloss.NewStyle().
			Foreground(theme.ColorPrimary).
			Render(statusDot + " signed in")
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Render(statusDot + " signed out")
}
