package processing

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/processing"
	"github.com/garrettladley/ecoscan/internal/tui/components/progress"
	"github.com/garrettladley/ecoscan/internal/tui/components/stepper"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const (
	barWidth     = 40
	contentWidth = 56
	subtitle     = "We're analyzing your receipt to calculate its environmental impact and find sustainable alternatives."
)

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// State is one processing run. The zero value is an inactive run.
type State struct {
	RunID     uint64
	ImagePath string
	Interval  time.Duration
	Delay     time.Duration

	tracker  *processing.Tracker
	snapshot processing.Snapshot
	frame    int
	done     bool
}

// Start begins run runID and returns the command for its first tick. Callers
// pass a fresh runID per run so ticks from an earlier run are ignored.
func Start(runID uint64, imagePath string, interval, delay time.Duration, opts ...processing.Option) (State, tea.Cmd, error) {
	tracker, err := processing.NewTracker(opts...)
	if err != nil {
		return State{}, nil, err
	}
	if interval <= 0 {
		interval = processing.DefaultInterval
	}

	s := State{
		RunID:     runID,
		ImagePath: imagePath,
		Interval:  interval,
		Delay:     delay,
		tracker:   tracker,
		snapshot:  tracker.Snapshot(),
	}
	return s, TickCmd(s.RunID, interval), nil
}

func (s State) Active() bool { return s.tracker != nil }

func (s State) Snapshot() processing.Snapshot { return s.snapshot }

// Cancel invalidates the run so its in-flight ticks are ignored.
func (s *State) Cancel() {
	*s = State{}
}

// Tick applies msg if it belongs to this run and returns the next command:
// another tick, the delayed completion, or nil for a stale message.
func (s *State) Tick(msg TickMsg) tea.Cmd {
	if !s.Active() || msg.RunID != s.RunID || s.done {
		return nil
	}

	snap, completed := s.tracker.Tick(s.Interval)
	s.snapshot = snap
	s.frame++

	if completed {
		s.done = true
		return CompleteCmd(s.RunID, s.Delay)
	}
	return TickCmd(s.RunID, s.Interval)
}

// Owns reports whether msg completes this run.
func (s State) Owns(msg CompleteMsg) bool {
	return s.Active() && s.done && msg.RunID == s.RunID
}

func View(t theme.Theme, s State, width, height int) string {
	snap := s.snapshot

	spinner := t.TextAccent().Render(spinnerFrames[s.frame%len(spinnerFrames)])
	if snap.Complete {
		spinner = t.TextAccent().Render("✓")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		spinner,
		"",
		progress.New(snap.Percent, barWidth).Render(),
		"",
		t.Title().Render("Processing Receipt"),
		t.TextAccent().Render(snap.Phase.Message()),
		t.TextMuted().Width(contentWidth).Align(lipgloss.Center).Render(subtitle),
		"",
		stepper.Render(snap.Steps),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
