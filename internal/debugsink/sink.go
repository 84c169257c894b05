// Package debugsink writes enhanced OCR images to disk so inaccurate
// recognition can be inspected after the fact.
//
// Output is best effort. Callers are expected to log a failed Save and carry
// on; nothing in the extraction result depends on these files.
package debugsink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Folder saves images as PNG files in a single directory.
//
// Each name maps to one file, so repeated saves under the same name
// overwrite each other and only the most recent image is kept. Concurrent
// saves under distinct names do not interfere; concurrent saves under the
// same name are last-writer-wins.
type Folder struct {
	dir string
}

// NewFolder returns a sink writing into dir. The directory is created on the
// first Save if it does not exist.
func NewFolder(dir string) *Folder {
	return &Folder{dir: dir}
}

// Dir returns the output directory.
func (f *Folder) Dir() string {
	return f.dir
}

// Path returns the file Save writes for name.
func (f *Folder) Path(name string) string {
	return filepath.Join(f.dir, name+".png")
}

// Save writes img to <dir>/<name>.png.
func (f *Folder) Save(img image.Image, name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid debug image name %q", name)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create debug folder: %w", err)
	}

	if err := imaging.Save(img, f.Path(name)); err != nil {
		return fmt.Errorf("failed to write debug image %s: %w", name, err)
	}
	return nil
}

// Discard is a sink that drops every image.
type Discard struct{}

// Save does nothing.
func (Discard) Save(image.Image, string) error { return nil }
