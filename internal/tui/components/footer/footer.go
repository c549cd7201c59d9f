package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

type Footer struct {
	hints        []string
	rightContent string
	dbPath       string
	width        int
	padding      int
}

// New builds a footer showing the version and key hints on the left and
// rightContent flush right.
func New(rightContent string, width int, hints ...string) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

// WithDBPath records the scan database in use. Development builds show it.
func (f Footer) WithDBPath(path string) Footer {
	f.dbPath = path
	return f
}

var hintStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted)

func (f Footer) Render() string {
	leftContent := f.leftContent()
	if len(f.hints) > 0 {
		leftContent += "  " + hintStyle.Render(strings.Join(f.hints, " • "))
	}

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		PaddingBottom(1).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}
