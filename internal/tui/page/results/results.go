package results

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/components/gauge"
	"github.com/garrettladley/ecoscan/internal/tui/components/scroll"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const cardWidth = 72

type State struct {
	Scan scan.Scan
	// Fallback is set when the requested scan was not stored and the sample
	// record is shown in its place.
	Fallback bool
	// Offset is the first visible line when the report is taller than the
	// screen.
	Offset scroll.Offset
}

func (s *State) ScrollUp() {
	s.Offset.Up()
}

// ScrollDown moves one line down, stopping once the end of the report is
// visible on a screen of height lines.
func (s *State) ScrollDown(t theme.Theme, height int) {
	s.Offset.Down(content(t, *s), height)
}

// Resolve picks the record to show for msg, substituting the sample when
// nothing was found or the lookup failed.
func Resolve(msg LoadMsg, now time.Time) State {
	if msg.Err == nil && msg.Scan != nil {
		return State{Scan: *msg.Scan}
	}
	return State{Scan: scan.Sample(msg.ID, "", now), Fallback: true}
}

func View(t theme.Theme, s State, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, scroll.Clip(content(t, s), s.Offset, height))
}

func content(t theme.Theme, s State) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		scoreCard(t, s),
		itemsCard(t, s.Scan.Items),
		recommendationsCard(t, s.Scan.Recommendations),
	)
}

func scoreCard(t theme.Theme, s State) string {
	ring := gauge.New(s.Scan.Score).Render()

	info := []string{
		t.Title().Render("Sustainability Score"),
		"",
		t.Score(s.Scan.Score).Render(scan.Rating(s.Scan.Score)),
		t.TextMuted().Render(fmt.Sprintf("%s • %s", s.Scan.StoreName, s.Scan.ScannedAt.Local().Format("Jan 2, 2006"))),
	}
	if s.Fallback {
		info = append(info, "", t.TextMuted().Italic(true).Render("showing sample result"))
	}

	return t.Card().Width(cardWidth).Render(lipgloss.JoinHorizontal(
		lipgloss.Center,
		ring,
		"    ",
		lipgloss.JoinVertical(lipgloss.Left, info...),
	))
}

func itemsCard(t theme.Theme, items []scan.Item) string {
	lines := []string{t.Title().Render("Items Analysis"), ""}
	for i, item := range items {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, itemBlock(t, item)...)
	}
	return t.Card().Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func itemBlock(t theme.Theme, item scan.Item) []string {
	var (
		inner = cardWidth - 6
		score = t.Score(item.SustainabilityScore).Render(fmt.Sprint(item.SustainabilityScore))
		name  = t.Base().Bold(true).Render(item.Name)
		gap   = max(inner-lipgloss.Width(name)-lipgloss.Width(score), 1)
	)

	lines := []string{
		name + strings.Repeat(" ", gap) + score,
		t.TextMuted().Render(item.Category + " • " + item.Impact),
	}
	if len(item.Alternatives) == 0 {
		return lines
	}

	lines = append(lines, t.TextAccent().Render("  Better alternatives:"))
	for _, alt := range item.Alternatives {
		lines = append(lines,
			"  "+t.Base().Render("↳ "+alt.Name+" ")+t.Score(alt.Score).Render(fmt.Sprint(alt.Score)),
			"    "+t.TextMuted().Render(alt.Reason),
		)
	}
	return lines
}

func recommendationsCard(t theme.Theme, recs []string) string {
	if len(recs) == 0 {
		return ""
	}
	lines := []string{t.Title().Render("Recommendations"), ""}
	for _, r := range recs {
		lines = append(lines, t.TextAccent().Render("• ")+t.Base().Render(r))
	}
	return t.Card().Width(cardWidth).Render(strings.Join(lines, "\n"))
}
