package toasts

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/toast"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const (
	cardWidth = 38
	// MaxVisible caps the stack; older toasts beyond it are hidden until the
	// newer ones expire.
	MaxVisible = 4
)

// Render stacks the newest entries, oldest on top. It returns "" for no
// entries.
func Render(entries []toast.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	if len(entries) > MaxVisible {
		entries = entries[len(entries)-MaxVisible:]
	}

	cards := make([]string, len(entries))
	for i, e := range entries {
		cards[i] = card(e)
	}
	return lipgloss.JoinVertical(lipgloss.Right, cards...)
}

func card(e toast.Entry) string {
	accent := theme.ColorPrimary
	if e.Variant == toast.VariantDestructive {
		accent = theme.ColorDanger
	}

	body := lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true).Render(e.Title)
	if e.Description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(e.Description),
		)
	}

	return lipgloss.NewStyle().
		Width(cardWidth).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		Background(theme.ColorSurface).
		Padding(0, 1).
		MarginTop(1).
		Render(body)
}
