//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
	"github.com/garrettladley/ecoscan/internal/version"
)

var versionStyle = lipgloss.NewStyle().Foreground(theme.ColorPrimary)

func (f Footer) leftContent() string {
	return versionStyle.Render("ecoscan " + version.Short(version.Get()))
}
