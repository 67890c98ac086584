package state

// Area is an axis-aligned rectangle in surface space.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

func (a Area) Overlaps(b Area) bool {
	return !(a.X+a.Width < b.X || b.X+b.Width < a.X ||
		a.Y+a.Height < b.Y || b.Y+b.Height < a.Y)
}

// Union returns the smallest area covering both a and b.
// An empty operand is ignored.
func (a Area) Union(b Area) Area {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}

	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)

	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Grow returns a with margin added on every side.
func (a Area) Grow(margin float64) Area {
	return Area{
		X:      a.X - margin,
		Y:      a.Y - margin,
		Width:  a.Width + 2*margin,
		Height: a.Height + 2*margin,
	}
}

// Intersect returns the part of a that lies inside b, or an empty area.
func (a Area) Intersect(b Area) Area {
	minX := max(a.X, b.X)
	minY := max(a.Y, b.Y)
	maxX := min(a.X+a.Width, b.X+b.Width)
	maxY := min(a.Y+a.Height, b.Y+b.Height)
	if maxX <= minX || maxY <= minY {
		return Area{}
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoundsOf returns the bounding box of points, grown by padding on every side.
func BoundsOf(points []Point, padding float64) Area {
	if len(points) == 0 {
		return Area{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	return Area{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}
}
