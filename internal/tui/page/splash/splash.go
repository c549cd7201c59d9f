package splash

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 ▄▄▄▄▄▄   ▄▄▄▄▄    ▄▄▄▄     ▄▄▄▄▄    ▄▄▄▄▄     ▄▄▄     ▄▄    ▄▄
 ██▀▀▀▀  ██▀▀▀▀█  ██▀▀██   ██▀▀▀▀█  ██▀▀▀▀█   ██▀██    ███   ██
 ██      ██      ██    ██  ▀██▄     ██        ██   ██   ██▀█  ██
 ██████  ██      ██    ██    ▀██▄   ██        ██▄▄▄██   ██ ██ ██
 ██      ██      ██    ██       ██  ██        ██▀▀▀██   ██  █▄██
 ██▄▄▄▄  ██▄▄▄▄█  ██▄▄██   █▄▄▄▄██  ██▄▄▄▄█   ██   ██   ██   ███
 ▀▀▀▀▀▀   ▀▀▀▀▀    ▀▀▀▀     ▀▀▀▀▀    ▀▀▀▀▀    ▀▀   ▀▀   ▀▀    ▀▀`

const tagline = "know the footprint of every receipt"

type TickMsg struct{}

func TickCmd() tea.Cmd {
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func View(t theme.Theme, width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.TextAccent().Render(Logo),
		"",
		t.TextMuted().Render(tagline),
	)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
