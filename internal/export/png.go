package export

import (
	"image/color"
	"io"
	"math"

	"LineSketch/internal/state"

	"github.com/gogpu/gg"
)

// pngSurface rasterises a frame with the gg software renderer.
type pngSurface struct {
	dc     *gg.Context
	origin state.Point
	err    error
}

func newPNGSurface(area state.Area) *pngSurface {
	w := int(math.Ceil(area.Width))
	h := int(math.Ceil(area.Height))
	return &pngSurface{
		dc:     gg.NewContext(w, h),
		origin: state.Point{X: area.X, Y: area.Y},
	}
}

func (s *pngSurface) Clear(_, _ float64, bg color.Color) {
	if bg == nil {
		s.dc.Clear()
		return
	}
	s.dc.ClearWithColor(gg.FromColor(bg))
}

func (s *pngSurface) Segment(a, b state.Point, st state.Style) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawLine(a.X-s.origin.X, a.Y-s.origin.Y, b.X-s.origin.X, b.Y-s.origin.Y)
	s.keep(s.dc.Stroke())
}

func (s *pngSurface) Circle(c state.Point, r float64, st state.Style) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawCircle(c.X-s.origin.X, c.Y-s.origin.Y, r)
	s.keep(s.dc.Stroke())
}

// keep records the first stroke error.
func (s *pngSurface) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *pngSurface) output(w io.Writer) error {
	defer s.dc.Close()
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}
