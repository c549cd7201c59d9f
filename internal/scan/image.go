package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/garrettladley/ecoscan/internal/apperr"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".heic": {},
}

// ValidateImage checks that path names a readable receipt photo. It returns
// the cleaned absolute path.
func ValidateImage(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", apperr.Invalid("no_receipt", "no receipt selected")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperr.Internal("image_path", "failed to resolve image path", err)
	}

	if _, ok := imageExtensions[strings.ToLower(filepath.Ext(abs))]; !ok {
		return "", apperr.Invalid("unsupported_image", fmt.Sprintf("unsupported image type %q (want jpg, jpeg, png or heic)", filepath.Ext(abs)))
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", apperr.Invalid("image_not_found", "image not found: "+abs)
	case err != nil:
		return "", apperr.Internal("image_stat", "failed to read image", err)
	case !info.Mode().IsRegular():
		return "", apperr.Invalid("image_not_file", "not a regular file: "+abs)
	}

	return abs, nil
}
