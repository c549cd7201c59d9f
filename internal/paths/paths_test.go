package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDB_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DB("")
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}

	want := filepath.Join(home, ".config", "ecoscan", "ecoscan.db")
	if got != want {
		t.Errorf("DB() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestDB_Override(t *testing.T) {
	t.Parallel()

	want := filepath.Join(t.TempDir(), "nested", "scans.db")
	got, err := DB(want)
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}
	if got != want {
		t.Errorf("DB() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("override dir not created: %v", err)
	}
}

func TestLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Log()
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	want := filepath.Join(home, ".config", "ecoscan", "ecoscan.log")
	if got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}
