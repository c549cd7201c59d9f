package home

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const cardWidth = 64

type State struct {
	Loaded    bool
	Stats     scan.Stats
	Recent    []scan.Scan
	ImagePath string
}

func (s *State) Apply(msg LoadMsg) {
	s.Loaded = true
	if msg.Err != nil {
		return
	}
	s.Stats = msg.Stats
	s.Recent = msg.Recent
}

func View(t theme.Theme, state State, width, height int) string {
	welcome := t.Card().Width(cardWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title().Render("Welcome to EcoScan"),
		t.TextMuted().Width(cardWidth-6).Render(
			"Scan your receipts to discover the environmental impact of your purchases and get sustainable alternatives.",
		),
		"",
		statsRow(t, state),
		"",
		receiptLine(t, state.ImagePath),
	))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		welcome,
		recentCard(t, state),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func statsRow(t theme.Theme, state State) string {
	var (
		total = "..."
		avg   = "..."
	)
	if state.Loaded {
		total = fmt.Sprint(state.Stats.TotalScans)
		avg = fmt.Sprintf("%.0f", state.Stats.AverageScore)
		if state.Stats.Empty() {
			avg = "--"
		}
	}

	stat := func(value, label string) string {
		return lipgloss.NewStyle().
			Width(cardWidth/2 - 4).
			Align(lipgloss.Center).
			Render(lipgloss.JoinVertical(
				lipgloss.Center,
				t.TextAccent().Render(value),
				t.TextMuted().Render(label),
			))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, stat(total, "Scans"), stat(avg, "Avg Score"))
}

func receiptLine(t theme.Theme, imagePath string) string {
	if imagePath == "" {
		return t.TextMuted().Render("No receipt selected. Press s to pick one.")
	}
	return t.Base().Render("Receipt: ") + t.TextAccent().Render(filepath.Base(imagePath)) +
		t.TextMuted().Render("  press s to scan")
}

func recentCard(t theme.Theme, state State) string {
	var body string
	switch {
	case !state.Loaded:
		body = t.TextMuted().Render("Loading...")
	case len(state.Recent) == 0:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			t.Title().Render("No scans yet"),
			t.TextMuted().Render("Start by scanning your first receipt!"),
		)
	default:
		rows := make([]string, len(state.Recent))
		for i, s := range state.Recent {
			rows[i] = Row(t, s, cardWidth-6)
		}
		body = strings.Join(rows, "\n")
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(cardWidth-6-lipgloss.Width("h view all")).Render(t.Title().Render("Recent Scans")),
		t.TextMuted().Render("h view all"),
	)

	return t.Card().Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

// Row renders one scan as "store  date  score", score coloured by tier.
func Row(t theme.Theme, s scan.Scan, width int) string {
	store := s.StoreName
	if store == "" {
		store = "Unknown Store"
	}
	score := t.Score(s.Score).Render(fmt.Sprint(s.Score))
	left := t.Base().Render(store) + "  " + t.TextMuted().Render(s.ScannedAt.Local().Format("Jan 2, 2006"))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(score), 1)
	return left + strings.Repeat(" ", gap) + score
}
