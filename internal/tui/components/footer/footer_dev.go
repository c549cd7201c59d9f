//go:build !release

package footer

import (
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ecoscan/internal/tui/theme"
	"github.com/garrettladley/ecoscan/internal/version"
)

var devStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

// leftContent shows the full version and which database the session writes
// to, so a seeded dev database is never mistaken for the real one.
func (f Footer) leftContent() string {
	out := version.Get()
	if f.dbPath != "" {
		out += " · db " + tildePath(f.dbPath)
	}
	return devStyle.Render(out)
}

func tildePath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if rel, ok := strings.CutPrefix(p, home+string(filepath.Separator)); ok {
		return filepath.Join("~", rel)
	}
	return p
}
