package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/garrettladley/ecoscan/internal/apperr"
)

func TestValidateImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("img"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		return p
	}

	var (
		jpg    = write("receipt.jpg")
		upper  = write("RECEIPT.JPEG")
		heic   = write("receipt.heic")
		txt    = write("notes.txt")
		subdir = filepath.Join(dir, "folder.png")
	)
	if err := os.Mkdir(subdir, 0o700); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{name: "jpg", path: jpg},
		{name: "upper case extension", path: upper},
		{name: "heic", path: heic},
		{name: "empty", path: "  ", wantCode: "no_receipt"},
		{name: "wrong extension", path: txt, wantCode: "unsupported_image"},
		{name: "missing", path: filepath.Join(dir, "missing.png"), wantCode: "image_not_found"},
		{name: "directory", path: subdir, wantCode: "image_not_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateImage(tt.path)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateImage() error = %v", err)
				}
				if got != tt.path {
					t.Errorf("ValidateImage() = %q, want %q", got, tt.path)
				}
				return
			}

			appErr := apperr.AsError(err)
			if appErr == nil {
				t.Fatalf("ValidateImage() error = %v, want *apperr.Error", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", appErr.Code, tt.wantCode)
			}
			if appErr.Kind != apperr.KindInvalid {
				t.Errorf("Kind = %s, want %s", appErr.Kind, apperr.KindInvalid)
			}
		})
	}
}
