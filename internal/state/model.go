package state

import (
	"image/color"
	"math"
)

type Point struct{ X, Y float64 }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Finite reports whether both coordinates are neither NaN nor infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Style is passed explicitly with every draw call.
type Style struct {
	Color color.Color
	Width float64
}

// Palette holds the styles the sketch draws with.
type Palette struct {
	Background   color.Color
	Segment      Style
	Marker       Style
	MarkerRadius float64
}

func DefaultPalette() Palette {
	return Palette{
		Background:   color.White,
		Segment:      Style{Color: color.Black, Width: 1},
		Marker:       Style{Color: color.NRGBA{R: 255, A: 255}, Width: 1},
		MarkerRadius: 4,
	}
}

// Surface is anything a frame can be drawn onto.
type Surface interface {
	Clear(width, height float64, bg color.Color)
	Segment(a, b Point, st Style)
	Circle(c Point, r float64, st Style)
}

type Kind string

const (
	KindLine Kind = "line"
)

// Entity is a drawable, updatable member of the engine's world.
type Entity interface {
	ID() string
	Kind() Kind
	Update()
	Draw(s Surface)
	Removed() bool
}
