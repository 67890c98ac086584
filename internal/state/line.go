package state

import (
	"log"
	"math"

	"github.com/google/uuid"
)

const (
	// MinLength is the length below which a collapsing line is removed.
	MinLength = 2.0
	// shrinkDivisor sets how much of its length a line loses per collapse step.
	shrinkDivisor = 60.0
	// parallelEpsilon bounds the denominator treated as parallel segments.
	parallelEpsilon = 1e-9
)

// Line is a segment placed by two clicks. It holds at most two points,
// kept in ascending x order.
type Line struct {
	id              string
	engine          *Engine // borrowed, never owned
	points          []Point
	removeFromWorld bool
}

var _ Entity = (*Line)(nil)

func NewLine(e *Engine) *Line {
	return &Line{
		id:     uuid.NewString(),
		engine: e,
		points: make([]Point, 0, 2),
	}
}

func (l *Line) ID() string    { return l.id }
func (l *Line) Kind() Kind    { return KindLine }
func (l *Line) Removed() bool { return l.removeFromWorld }

// Points returns a copy of the line's points.
func (l *Line) Points() []Point {
	out := make([]Point, len(l.points))
	copy(out, l.points)
	return out
}

func (l *Line) Len() int { return len(l.points) }

// Complete reports whether both endpoints are placed.
func (l *Line) Complete() bool { return len(l.points) == 2 }

// Length is the distance between the endpoints, or 0 for an incomplete line.
func (l *Line) Length() float64 {
	if !l.Complete() {
		return 0
	}
	return l.points[0].Distance(l.points[1])
}

// Intersect returns where l crosses other. While l has only one point the
// mouse position stands in for its second endpoint. other must be complete.
// Parallel and coincident segments report no intersection.
func (l *Line) Intersect(other *Line, mouse Point) (Point, bool) {
	if len(l.points) == 0 || other == nil || !other.Complete() {
		return Point{}, false
	}

	p1 := l.points[0]
	p2 := mouse
	if len(l.points) == 2 {
		p2 = l.points[1]
	}
	return segmentIntersection(p1, p2, other.points[0], other.points[1])
}

// segmentIntersection crosses segment p1p2 with p3p4. Both parameters must
// fall in [0, 1], endpoints included; a NaN parameter never does.
func segmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < parallelEpsilon {
		return Point{}, false
	}

	uA := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	uB := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom
	if !(uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1) {
		return Point{}, false
	}

	return Point{
		X: p1.X + uA*(p2.X-p1.X),
		Y: p1.Y + uA*(p2.Y-p1.Y),
	}, true
}

func (l *Line) Draw(s Surface) {
	pal := l.engine.Palette()

	switch len(l.points) {
	case 1:
		mouse, ok := l.engine.Mouse()
		if !ok {
			return
		}
		s.Segment(l.points[0], mouse, pal.Segment)
		l.drawMarkers(s, mouse, pal)
	case 2:
		l.drawMarkers(s, Point{}, pal)
		s.Segment(l.points[0], l.points[1], pal.Segment)
	}
}

func (l *Line) drawMarkers(s Surface, mouse Point, pal Palette) {
	for _, other := range l.engine.earlierLines(l) {
		if p, ok := l.Intersect(other, mouse); ok {
			s.Circle(p, pal.MarkerRadius, pal.Marker)
		}
	}
}

func (l *Line) UndoPoints() {
	l.points = l.points[:0]
}

// ReduceEqually returns the endpoints moved toward each other by a sixtieth
// of the current length. Once the line is shorter than MinLength it is
// emptied, flagged for removal and nil is returned.
func (l *Line) ReduceEqually() []Point {
	if len(l.points) < 2 {
		// An unfinished line has nothing to shrink toward.
		l.UndoPoints()
		return nil
	}

	p1, p2 := l.points[0], l.points[1]
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	mag := math.Hypot(dx, dy)
	if mag < MinLength {
		l.UndoPoints()
		l.removeFromWorld = true
		log.Printf("[ENGINE] Line %s collapsed", l.id)
		return nil
	}

	step := mag / shrinkDivisor
	return []Point{
		{X: p1.X + step*dx/mag, Y: p1.Y + step*dy/mag},
		{X: p2.X - step*dx/mag, Y: p2.Y - step*dy/mag},
	}
}

// setPoints replaces the endpoints with the result of a shrink step.
func (l *Line) setPoints(pts []Point) {
	l.points = append(l.points[:0], pts...)
}

func (l *Line) Update() {
	e := l.engine
	if e.Collapsing() {
		return
	}

	if e.input.rightClick && len(l.points) == 1 {
		l.UndoPoints()
		e.input.rightClick = false
	}

	if click, ok := e.pendingClick(); ok && len(l.points) < 2 {
		if len(l.points) == 0 || click.X > l.points[0].X {
			l.points = append(l.points, click)
		} else {
			l.points = append([]Point{click}, l.points...)
		}

		if len(l.points) == 2 {
			log.Printf("[ENGINE] Line %s complete: (%.1f, %.1f)-(%.1f, %.1f)",
				l.id, l.points[0].X, l.points[0].Y, l.points[1].X, l.points[1].Y)
			e.AddEntity(NewLine(e))
		}
	}
}
