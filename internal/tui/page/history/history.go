package history

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/page/home"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const cardWidth = 64

type State struct {
	Loaded bool
	Scans  []scan.Scan
	Cursor int
}

func (s *State) Apply(msg LoadMsg) {
	s.Loaded = true
	s.Scans = msg.Scans
	s.Cursor = min(s.Cursor, max(len(s.Scans)-1, 0))
}

func (s *State) Up() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

func (s *State) Down() {
	if s.Cursor < len(s.Scans)-1 {
		s.Cursor++
	}
}

// Selected returns the scan under the cursor, if any.
func (s State) Selected() (scan.Scan, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Scans) {
		return scan.Scan{}, false
	}
	return s.Scans[s.Cursor], true
}

func View(t theme.Theme, s State, width, height int) string {
	var body string
	switch {
	case !s.Loaded:
		body = t.TextMuted().Render("Loading...")
	case len(s.Scans) == 0:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			t.Title().Render("No scans yet"),
			t.TextMuted().Width(cardWidth-6).Render("Start by scanning your first receipt to see your history here."),
		)
	default:
		// keep the cursor visible when the list outgrows the screen
		var (
			visible = max(height-10, 3)
			start   = max(s.Cursor-visible+1, 0)
			end     = min(start+visible, len(s.Scans))
			rows    = make([]string, 0, end-start)
		)
		for i := start; i < end; i++ {
			marker := "  "
			if i == s.Cursor {
				marker = t.TextAccent().Render("▸ ")
			}
			rows = append(rows, marker+home.Row(t, s.Scans[i], cardWidth-8))
		}
		body = strings.Join(rows, "\n")
	}

	card := t.Card().Width(cardWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title().Render("Scan History"),
		"",
		body,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
