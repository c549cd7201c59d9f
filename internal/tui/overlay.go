package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayBottomRight draws overlay over base so that its last line sits
// marginBottom lines above the bottom of base and its right edge marginRight
// cells from the right. Both strings may contain ANSI styling.
func overlayBottomRight(base, overlay string, width, marginRight, marginBottom int) string {
	if overlay == "" {
		return base
	}

	var (
		baseLines    = strings.Split(base, "\n")
		overlayLines = strings.Split(overlay, "\n")
		overlayWidth = 0
	)
	for _, l := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(l))
	}

	var (
		x   = max(width-marginRight-overlayWidth, 0)
		top = max(len(baseLines)-marginBottom-len(overlayLines), 0)
	)

	for i, ol := range overlayLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], ol, x, overlayWidth)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine replaces the cells [x, x+w) of line with segment, padding
// segment to w cells.
func spliceLine(line, segment string, x, w int) string {
	if pad := w - ansi.StringWidth(segment); pad > 0 {
		segment += strings.Repeat(" ", pad)
	}

	left := ansi.Truncate(line, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(line, x+w, "")

	return left + ansi.ResetStyle + segment + ansi.ResetStyle + right
}
