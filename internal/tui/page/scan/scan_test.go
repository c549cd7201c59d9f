package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
)

func writeImage(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte("png bytes"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return p
}

func TestState_Submit(t *testing.T) {
	t.Parallel()

	valid := writeImage(t, "receipt.png")

	tests := []struct {
		name     string
		value    string
		wantCode string
	}{
		{name: "valid image", value: valid},
		{name: "surrounding space", value: "  " + valid + " "},
		{name: "empty", value: "", wantCode: "no_receipt"},
		{name: "blank", value: "   ", wantCode: "no_receipt"},
		{name: "missing", value: filepath.Join(t.TempDir(), "gone.jpg"), wantCode: "image_not_found"},
		{name: "wrong type", value: writeImage(t, "notes.txt"), wantCode: "unsupported_image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := New(tt.value)
			err := s.Submit()

			if tt.wantCode != "" {
				appErr := apperr.AsError(err)
				if appErr == nil || appErr.Code != tt.wantCode {
					t.Fatalf("Submit() error = %v, want code %q", err, tt.wantCode)
				}
				if !s.Editing() {
					t.Error("still editing expected after a failed submit")
				}
				return
			}

			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if s.Editing() {
				t.Fatal("Editing() = true after a valid submit")
			}
			if s.Selected != valid {
				t.Errorf("Selected = %q, want %q", s.Selected, valid)
			}
			if s.Size != int64(len("png bytes")) {
				t.Errorf("Size = %d, want %d", s.Size, len("png bytes"))
			}
		})
	}
}

func TestState_TypingAndEdit(t *testing.T) {
	t.Parallel()

	path := writeImage(t, "receipt.jpg")

	s, _ := New("")
	s.Update(tea.PasteMsg{Content: path})
	if got := s.Value(); got != path {
		t.Fatalf("Value() = %q, want %q", got, path)
	}

	if err := s.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// the input is frozen while previewing
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := s.Value(); got != path {
		t.Errorf("Value() changed during preview: %q", got)
	}

	s.Edit()
	if !s.Editing() || s.Selected != "" {
		t.Errorf("Edit() left Selected = %q", s.Selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if got, want := s.Value(), path[:len(path)-1]; got != want {
		t.Errorf("Value() after backspace = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/r.jpg", want: filepath.Join(home, "r.jpg")},
		{in: "~", want: home},
		{in: "/tmp/~/r.jpg", want: "/tmp/~/r.jpg"},
		{in: "~user/r.jpg", want: "~user/r.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := expandHome(tt.in); got != tt.want {
				t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	th := theme.New()
	path := writeImage(t, "weekly-shop.png")

	s, _ := New(path)
	editing := ansi.Strip(View(th, s, 120, 40))
	if !strings.Contains(editing, "Scan Receipt") {
		t.Errorf("editing view missing title:\n%s", editing)
	}
	if strings.Contains(editing, "Process Receipt") {
		t.Errorf("editing view shows the process button:\n%s", editing)
	}

	if err := s.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	previewing := ansi.Strip(View(th, s, 120, 40))
	for _, want := range []string{"Preview", "weekly-shop.png", "9 B", "Process Receipt", "esc change"} {
		if !strings.Contains(previewing, want) {
			t.Errorf("preview missing %q:\n%s", want, previewing)
		}
	}
}
