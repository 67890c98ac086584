package ui

import (
	"fmt"
	"image/color"
	"log"

	"LineSketch/internal/export"
	"LineSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Segment colour swatches ---

// segmentSwatch is one segment colour choice; the selected swatch gets a
// heavier primary-coloured border.
type segmentSwatch struct {
	widget.BaseWidget
	color    color.Color
	selected bool
	onPick   func(*segmentSwatch)
}

func newSegmentSwatch(c color.Color, pick func(*segmentSwatch)) *segmentSwatch {
	s := &segmentSwatch{color: c, onPick: pick}
	s.ExtendBaseWidget(s)
	return s
}

func (s *segmentSwatch) setSelected(on bool) {
	if s.selected == on {
		return
	}
	s.selected = on
	s.Refresh()
}

func (s *segmentSwatch) Tapped(_ *fyne.PointEvent) {
	if s.onPick != nil {
		s.onPick(s)
	}
}

func (s *segmentSwatch) CreateRenderer() fyne.WidgetRenderer {
	r := &swatchRenderer{
		swatch: s,
		fill:   canvas.NewRectangle(s.color),
		border: canvas.NewRectangle(color.Transparent),
	}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *segmentSwatch
	fill   *canvas.Rectangle
	border *canvas.Rectangle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.border.Resize(size)
	inset := r.border.StrokeWidth
	r.fill.Move(fyne.NewPos(inset, inset))
	r.fill.Resize(size.SubtractWidthHeight(2*inset, 2*inset))
}

func (r *swatchRenderer) MinSize() fyne.Size { return fyne.NewSize(24, 24) }

func (r *swatchRenderer) Refresh() {
	r.fill.FillColor = r.swatch.color
	if r.swatch.selected {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 3
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
	}
	r.Layout(r.swatch.Size())
	canvas.Refresh(r.swatch)
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.border}
}

func (r *swatchRenderer) Destroy() {}

// newSwatchRow builds one swatch per colour. Picking a swatch sets the
// sketch's segment colour and moves the selection to it.
func newSwatchRow(sketch *SketchWidget, colors ...color.Color) (*fyne.Container, []*segmentSwatch) {
	swatches := make([]*segmentSwatch, 0, len(colors))
	pick := func(picked *segmentSwatch) {
		sketch.SetSegmentColor(picked.color)
		for _, s := range swatches {
			s.setSelected(s == picked)
		}
	}

	row := container.NewHBox()
	current := sketch.SegmentColor()
	for _, c := range colors {
		s := newSegmentSwatch(c, pick)
		s.selected = sameColor(c, current)
		swatches = append(swatches, s)
		row.Add(s)
	}
	return row, swatches
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// statusText formats the engine summary shown under the sketch.
func statusText(st state.Status) string {
	mode := "drawing"
	if st.Collapsing {
		mode = "collapsing"
	}
	return fmt.Sprintf("Lines: %d  |  Mode: %s  |  Time: %.1fs", st.Complete, mode, st.GameTime)
}

// --- The Main Toolbar ---
func NewToolbar(sketch *SketchWidget, win fyne.Window, status *widget.Label) fyne.CanvasObject {
	saveAs := func(f export.Format) func() {
		return func() {
			d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if writer == nil {
					return // cancelled
				}
				if err := sketch.SaveSnapshot(writer); err != nil {
					log.Printf("[UI] Snapshot failed: %v", err)
					dialog.ShowError(err, win)
					return
				}
				status.SetText("Saved " + writer.URI().Name())
			}, win)
			d.SetFileName("sketch." + string(f))
			d.SetFilter(storage.NewExtensionFileFilter([]string{"." + string(f)}))
			d.Show()
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FileImageIcon(), saveAs(export.FormatPNG)),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), saveAs(export.FormatPDF)),
	)

	colorBox, _ := newSwatchRow(sketch,
		color.Black,
		color.NRGBA{G: 128, A: 255}, // Green
		color.NRGBA{B: 255, A: 255}, // Blue
	)

	return container.NewHBox(
		widget.NewButton("Collapse", sketch.Collapse),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Line:"),
		colorBox,
		layout.NewSpacer(),
	)
}
