package export

import (
	"image/color"
	"io"

	"LineSketch/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// pdfSurface draws onto a single page measured in points, one point per
// surface pixel.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	origin state.Point
	page   state.Area
}

func newPDFSurface(area state.Area) *pdfSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: area.Width, Ht: area.Height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	return &pdfSurface{
		pdf:    p,
		origin: state.Point{X: area.X, Y: area.Y},
		page:   area,
	}
}

func (s *pdfSurface) Clear(_, _ float64, bg color.Color) {
	r, g, b := rgb8(bg)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(0, 0, s.page.Width, s.page.Height, "F")
}

func (s *pdfSurface) Segment(a, b state.Point, st state.Style) {
	s.setStroke(st)
	s.pdf.Line(a.X-s.origin.X, a.Y-s.origin.Y, b.X-s.origin.X, b.Y-s.origin.Y)
}

func (s *pdfSurface) Circle(c state.Point, r float64, st state.Style) {
	s.setStroke(st)
	s.pdf.Circle(c.X-s.origin.X, c.Y-s.origin.Y, r, "D")
}

func (s *pdfSurface) setStroke(st state.Style) {
	r, g, b := rgb8(st.Color)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(st.Width)
}

func (s *pdfSurface) output(w io.Writer) error {
	return s.pdf.Output(w)
}

func rgb8(c color.Color) (int, int, int) {
	if c == nil {
		return 0, 0, 0
	}
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
