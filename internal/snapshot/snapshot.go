// Package snapshot writes rendered frames to image files.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Dir is where snapshots go when no path is given.
const Dir = "snapshots"

// jpegQuality is used for .jpg and .jpeg outputs.
const jpegQuality = 92

// DefaultPath names a snapshot taken at t.
func DefaultPath(t time.Time) string {
	return filepath.Join(Dir, "cactus-"+t.Format("20060102-150405")+".png")
}

// Fit scales img to width pixels wide, keeping its aspect ratio. A width of
// zero or the image's own width returns img unchanged.
func Fit(img image.Image, width int) image.Image {
	size := img.Bounds().Size()
	if width <= 0 || width == size.X || size.X == 0 {
		return img
	}
	height := max(1, int(float32(size.Y)*float32(width)/float32(size.X)+0.5))
	return transform.Resize(img, width, height, transform.Linear)
}

// Save writes img to path, scaled by Fit. The format follows the extension:
// .jpg and .jpeg are JPEG, anything else PNG. The parent directory is created.
func Save(path string, img image.Image, width int) error {
	if img == nil {
		return fmt.Errorf("snapshot %s: no image", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := imgio.Save(path, Fit(img, width), encoderFor(path)); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality)
	}
	return imgio.PNGEncoder()
}
