package tips

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/components/scroll"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const cardWidth = 72

type Tip struct {
	Title       string
	Description string
	Impact      string
}

var All = []Tip{
	{
		Title:       "Choose Reusable Products",
		Description: "Opt for reusable water bottles, shopping bags, and containers to reduce single-use plastic waste.",
		Impact:      "Reduces plastic waste by up to 80%",
	},
	{
		Title:       "Buy Local & Seasonal",
		Description: "Purchase locally grown, seasonal produce to reduce transportation emissions and support local farmers.",
		Impact:      "Cuts carbon footprint by 15-30%",
	},
	{
		Title:       "Reduce Food Waste",
		Description: "Plan meals, store food properly, and use leftovers creatively to minimize food waste.",
		Impact:      "Saves 1,500 lbs CO2 per year",
	},
	{
		Title:       "Energy Efficient Appliances",
		Description: "Choose ENERGY STAR certified appliances and LED bulbs to reduce energy consumption.",
		Impact:      "Reduces energy use by 25-50%",
	},
	{
		Title:       "Sustainable Transportation",
		Description: "Walk, bike, use public transport, or carpool to reduce personal transportation emissions.",
		Impact:      "Saves 2.6 tons CO2 per year",
	},
	{
		Title:       "Mindful Fashion",
		Description: "Buy quality clothing that lasts, shop secondhand, and donate clothes you no longer wear.",
		Impact:      "Reduces textile waste by 70%",
	},
}

type State struct {
	Offset scroll.Offset
}

func (s *State) ScrollUp() {
	s.Offset.Up()
}

func (s *State) ScrollDown(t theme.Theme, height int) {
	s.Offset.Down(content(t), height)
}

func View(t theme.Theme, s State, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, scroll.Clip(content(t), s.Offset, height))
}

func content(t theme.Theme) string {
	blocks := []string{header(t)}
	for _, tip := range All {
		blocks = append(blocks, tipCard(t, tip))
	}
	blocks = append(blocks, impactCard(t))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func header(t theme.Theme) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title().Render("Sustainability Tips"),
		t.TextMuted().Width(cardWidth-4).Render("Small changes, big impact. Learn how to make your lifestyle more sustainable."),
	))
}

func tipCard(t theme.Theme, tip Tip) string {
	impact := lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("↗ " + tip.Impact)
	return t.Card().Width(cardWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.TextAccent().Render("❦ ")+t.Title().Render(tip.Title),
		t.Base().Width(cardWidth-6).Render(tip.Description),
		"",
		impact,
	))
}

func impactCard(t theme.Theme) string {
	return t.Card().
		Width(cardWidth).
		BorderForeground(theme.ColorPrimary).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			t.Title().Render("Track Your Impact"),
			t.TextMuted().Width(cardWidth-6).Align(lipgloss.Center).Render(
				"Use EcoScan to track your shopping habits and discover how your choices affect the environment.",
			),
		))
}
