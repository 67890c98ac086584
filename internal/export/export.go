// Package export renders the current sketch frame to an image file.
//
// Snapshots are one-way: they capture what is on screen, including the live
// preview segment, and cannot be loaded back.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"LineSketch/internal/state"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

var (
	ErrUnknownFormat = errors.New("unknown snapshot format")
	ErrEmptySurface  = errors.New("nothing to export: surface has no area")
	ErrTooLarge      = errors.New("snapshot too large")
)

const (
	// snapshotPadding keeps markers on lines at the edge inside the image.
	snapshotPadding = 8
	// snapshotMargin bounds how far past the surface a snapshot may reach.
	snapshotMargin = 1024
	// maxSnapshotPixels caps the raster size, 64 MiB as RGBA.
	maxSnapshotPixels = 1 << 24
)

type snapshotSurface interface {
	state.Surface
	output(w io.Writer) error
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Area returns the region a snapshot covers: the engine's surface grown to
// include placed points, clipped to snapshotMargin around the surface.
func Area(e *state.Engine) state.Area {
	var pts []state.Point
	for _, l := range e.Lines() {
		pts = append(pts, l.Points()...)
	}
	surface := e.Bounds()
	return surface.Union(state.BoundsOf(pts, snapshotPadding)).Intersect(surface.Grow(snapshotMargin))
}

// Write draws the engine's current frame to w in the given format.
func Write(w io.Writer, f Format, e *state.Engine) error {
	area := Area(e)
	if area.Empty() {
		return ErrEmptySurface
	}
	// NaN sizes fail this comparison.
	if !(area.Width*area.Height <= maxSnapshotPixels) {
		return fmt.Errorf("%w: %gx%g", ErrTooLarge, area.Width, area.Height)
	}

	var s snapshotSurface
	switch f {
	case FormatPNG:
		s = newPNGSurface(area)
	case FormatPDF:
		s = newPDFSurface(area)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	e.Draw(s)
	if err := s.output(w); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	log.Printf("[EXPORT] Wrote %s snapshot %gx%g", f, area.Width, area.Height)
	return nil
}

// WriteFile writes a snapshot to path, choosing the format by extension.
func WriteFile(path string, e *state.Engine) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := Write(file, f, e); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}
