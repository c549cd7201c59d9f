package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/scan"
)

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#6B7280")
)

var (
	ColorPrimary     = lipgloss.Color("#059669") // brand green, CTA, high scores
	ColorPrimaryTint = lipgloss.Color("#ECFDF5")
	ColorWarning     = lipgloss.Color("#D97706") // scores 60-79
	ColorDanger      = lipgloss.Color("#DC2626") // scores below 60, destructive toasts
	ColorMuted       = lipgloss.Color("#9CA3AF")
)

var (
	ColorBgDark  = lipgloss.Color("#0B1410")
	ColorBgLight = lipgloss.Color("#1F2D26")
	ColorSurface = lipgloss.Color("#15221B")
)

func ScoreColor(score int) color.Color {
	switch scan.TierOf(score) {
	case scan.TierHigh:
		return ColorPrimary
	case scan.TierMedium:
		return ColorWarning
	default:
		return ColorDanger
	}
}
