package main

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const dateLayout = "2006-01-02 15:04"

func writeJSON(w io.Writer, v any) error {
	b, err := go_json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printScan(w io.Writer, s scan.Scan) {
	var (
		title = lipgloss.NewStyle().Bold(true)
		muted = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	)

	_, _ = lipgloss.Fprintln(w, title.Render(s.StoreName), muted.Render(s.ScannedAt.Local().Format(dateLayout)))
	_, _ = lipgloss.Fprintln(w, "score:", scoreStyle(s.Score).Render(strconv.Itoa(s.Score)), muted.Render(scan.Rating(s.Score)))
	_, _ = lipgloss.Fprintln(w, muted.Render("id: "+s.ID))

	if len(s.Items) > 0 {
		_, _ = lipgloss.Fprintln(w)
		_, _ = lipgloss.Fprintln(w, title.Render("Items"))
	}
	for _, item := range s.Items {
		_, _ = lipgloss.Fprintf(w, "  %s %s %s\n",
			scoreStyle(item.SustainabilityScore).Render(fmt.Sprintf("%3d", item.SustainabilityScore)),
			item.Name,
			muted.Render("("+item.Category+")"),
		)
		for _, alt := range item.Alternatives {
			_, _ = lipgloss.Fprintf(w, "      → %s %s\n", alt.Name, muted.Render(fmt.Sprintf("[%d] %s", alt.Score, alt.Reason)))
		}
	}

	if len(s.Recommendations) > 0 {
		_, _ = lipgloss.Fprintln(w)
		_, _ = lipgloss.Fprintln(w, title.Render("Recommendations"))
	}
	for _, r := range s.Recommendations {
		_, _ = lipgloss.Fprintln(w, "  •", r)
	}
}

func historyTable(scans []scan.Scan) *table.Table {
	const scoreCol = 3

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorDim)).
		Headers("ID", "DATE", "STORE", "SCORE", "RATING")

	for _, s := range scans {
		t.Row(shortID(s.ID), s.ScannedAt.Local().Format(dateLayout), s.StoreName, strconv.Itoa(s.Score), scan.Rating(s.Score))
	}

	return t.StyleFunc(func(row, col int) lipgloss.Style {
		cell := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == table.HeaderRow:
			return cell.Bold(true).Foreground(theme.ColorPrimary)
		case col == scoreCol:
			return cell.Inherit(scoreStyle(scans[row].Score))
		default:
			return cell
		}
	})
}

func scoreStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ScoreColor(score))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
