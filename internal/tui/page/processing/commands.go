package processing

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg advances the run with the matching ID. Ticks from a cancelled or
// finished run carry a stale ID and are dropped.
type TickMsg struct {
	RunID uint64
}

// CompleteMsg fires once the post-completion delay has elapsed.
type CompleteMsg struct {
	RunID uint64
}

func TickCmd(runID uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{RunID: runID}
	})
}

func CompleteCmd(runID uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CompleteMsg{RunID: runID}
	})
}
