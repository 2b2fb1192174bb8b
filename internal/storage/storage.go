package storage

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/ybernard/camsweep/internal/debug"
)

// timestampLayout gives second resolution and sorts lexicographically.
const timestampLayout = "20060102_150405"

// Writer persists a single frame image at a path.
type Writer interface {
	Write(img image.Image, path string) error
}

// PNGWriter encodes frames as PNG files.
type PNGWriter struct{}

// Write encodes img to path. The parent directory must already exist.
func (PNGWriter) Write(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	debug.Live("Wrote %s", path)
	return nil
}

// Filename builds the output name for a capture:
// <timestamp>_cam<index>.png, with index the zero-based device index.
func Filename(taken time.Time, index int) string {
	return fmt.Sprintf("%s_cam%d.png", taken.Format(timestampLayout), index)
}

// FramePath builds the full output path for a capture.
func FramePath(dir string, taken time.Time, index int) string {
	return filepath.Join(dir, Filename(taken, index))
}

// EnsureDir creates the output directory if it is missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}
