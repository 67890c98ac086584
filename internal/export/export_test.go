package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"LineSketch/internal/state"
)

func newSketch(t *testing.T) *state.Engine {
	t.Helper()
	e := state.NewEngine()
	e.Init(200, 100)
	e.AddEntity(state.NewLine(e))

	for _, p := range []state.Point{{X: 10, Y: 10}, {X: 190, Y: 90}, {X: 10, Y: 90}, {X: 190, Y: 10}} {
		e.Click(p)
		e.Advance()
	}
	if got := len(e.Lines()); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}
	return e
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  error
	}{
		{"out.png", FormatPNG, nil},
		{"dir/Out.PDF", FormatPDF, nil},
		{"out.svg", "", ErrUnknownFormat},
		{"out", "", ErrUnknownFormat},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: expected error %v, got %v", tt.path, tt.err, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestAreaCoversOffscreenPoints(t *testing.T) {
	e := state.NewEngine()
	e.Init(100, 100)
	e.AddEntity(state.NewLine(e))
	e.Click(state.Point{X: -50, Y: 20})
	e.Advance()
	e.Click(state.Point{X: 50, Y: 150})
	e.Advance()

	a := Area(e)
	if !a.Contains(state.Point{X: -50, Y: 20}) || !a.Contains(state.Point{X: 50, Y: 150}) {
		t.Errorf("expected %+v to cover the offscreen line", a)
	}
	if !a.Contains(state.Point{X: 100, Y: 100}) {
		t.Errorf("expected %+v to cover the surface", a)
	}
}

func TestAreaClipsFarPoints(t *testing.T) {
	e := state.NewEngine()
	e.Init(100, 100)
	e.AddEntity(state.NewLine(e))
	e.Click(state.Point{X: 10, Y: 10})
	e.Advance()
	e.Click(state.Point{X: 30000, Y: 30000})
	e.Advance()

	a := Area(e)
	want := state.Area{Width: 100 + snapshotMargin, Height: 100 + snapshotMargin}
	if a != want {
		t.Errorf("expected %+v, got %+v", want, a)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FormatPNG, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	e := newSketch(t)

	var buf bytes.Buffer
	if err := Write(&buf, FormatPNG, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("expected 200x100 image, got %dx%d", b.Dx(), b.Dy())
	}

	// Background away from any stroke stays white.
	r, g, bl, _ := img.At(100, 2).RGBA()
	if r>>8 < 250 || g>>8 < 250 || bl>>8 < 250 {
		t.Errorf("expected white background, got %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}

func TestWritePDF(t *testing.T) {
	e := newSketch(t)

	var buf bytes.Buffer
	if err := Write(&buf, FormatPDF, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected a PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWriteErrors(t *testing.T) {
	e := state.NewEngine()
	if err := Write(&bytes.Buffer{}, FormatPNG, e); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("expected ErrEmptySurface, got %v", err)
	}

	e.Init(10, 10)
	if err := Write(&bytes.Buffer{}, Format("gif"), e); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	huge := state.NewEngine()
	huge.Init(5000, 5000)
	if err := Write(&bytes.Buffer{}, FormatPNG, huge); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestWriteFileRemovesFailedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	if err := WriteFile(path, state.NewEngine()); !errors.Is(err, ErrEmptySurface) {
		t.Fatalf("expected ErrEmptySurface, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file left behind, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	e := newSketch(t)
	dir := t.TempDir()

	for _, name := range []string{"sketch.png", "sketch.pdf"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, e); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: expected a non-empty file", name)
		}
	}

	if err := WriteFile(filepath.Join(dir, "sketch.txt"), e); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
