package host

import (
	"context"
	"errors"
	"testing"

	"LineSketch/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLeftPress(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		collapse bool
		points   int
	}{
		{"inside collapse button", 20, 15, true, 0},
		{"button corner", collapseButton.Min.X, collapseButton.Min.Y, true, 0},
		{"just past the button", collapseButton.Max.X, 15, false, 1},
		{"open canvas", 150, 120, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine()
			g := &sketchGame{ctx: context.Background(), engine: e, width: 320, height: 240}

			g.leftPress(tt.x, tt.y)
			if e.Collapsing() != tt.collapse {
				t.Errorf("expected collapsing=%v, got %v", tt.collapse, e.Collapsing())
			}

			e.Advance()
			if n := e.Lines()[0].Len(); n != tt.points {
				t.Errorf("expected %d points, got %d", tt.points, n)
			}
		})
	}
}

func TestSketchGameLayout(t *testing.T) {
	g := &sketchGame{engine: state.NewEngine(), width: 320, height: 240}

	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 240 {
		t.Errorf("expected 320x240, got %dx%d", w, h)
	}
}

func TestSketchGameStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &sketchGame{ctx: ctx, engine: newEngine(), width: 320, height: 240}

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
}
