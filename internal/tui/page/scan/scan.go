package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	receipt "github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

const cardWidth = 64

// State is the receipt picker. While editing, keys go to the path input;
// once a path validates, the preview is shown and the run can be confirmed.
type State struct {
	input textinput.Model

	// Selected is the validated absolute path, empty while editing.
	Selected string
	Size     int64
	Modified time.Time
}

// New starts editing with initial prefilled.
func New(initial string) (State, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "~/Downloads/receipt.jpg"
	input.SetWidth(cardWidth - 10)
	input.SetValue(initial)
	input.CursorEnd()

	s := State{input: input}
	cmd := s.input.Focus()
	return s, cmd
}

func (s State) Editing() bool { return s.Selected == "" }

func (s State) Value() string { return s.input.Value() }

// Update forwards msg to the path input while editing.
func (s *State) Update(msg tea.Msg) tea.Cmd {
	if !s.Editing() {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Submit validates the typed path and switches to the preview on success.
func (s *State) Submit() error {
	abs, err := receipt.ValidateImage(expandHome(strings.TrimSpace(s.input.Value())))
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	s.Selected = abs
	s.Size = info.Size()
	s.Modified = info.ModTime()
	s.input.Blur()
	return nil
}

// Edit leaves the preview and returns to the path input.
func (s *State) Edit() tea.Cmd {
	s.Selected = ""
	s.Size = 0
	s.Modified = time.Time{}
	return s.input.Focus()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func View(t theme.Theme, s State, width, height int) string {
	picker := t.Card().Width(cardWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title().Render("Scan Receipt"),
		t.TextMuted().Width(cardWidth-6).Render("Enter the path to a photo of your receipt (jpg, jpeg, png or heic)."),
		"",
		s.input.View(),
	))

	content := picker
	if !s.Editing() {
		content = lipgloss.JoinVertical(lipgloss.Left, picker, preview(t, s))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func preview(t theme.Theme, s State) string {
	row := func(label, value string) string {
		return t.TextMuted().Width(10).Render(label) + t.Base().Render(value)
	}

	button := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Background(theme.ColorPrimary).
		Bold(true).
		Padding(0, 2).
		Render("enter  Process Receipt")

	return t.Card().Width(cardWidth).BorderForeground(theme.ColorPrimary).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title().Render("Preview"),
		"",
		row("File", filepath.Base(s.Selected)),
		row("Folder", filepath.Dir(s.Selected)),
		row("Size", humanize.Bytes(uint64(max(s.Size, 0)))),
		row("Modified", humanize.Time(s.Modified)),
		"",
		button+"  "+t.TextMuted().Render("esc change"),
	))
}
