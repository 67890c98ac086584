package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"

	"LineSketch/internal/export"
	"LineSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SketchWidget shows the engine's frames and forwards mouse input to it.
type SketchWidget struct {
	widget.BaseWidget
	engine  *state.Engine
	surface *objectSurface
	size    fyne.Size
	stop    func()
	OnFrame func(state.Status)
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Tappable = (*SketchWidget)(nil)
var _ fyne.SecondaryTappable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)

func NewSketchWidget(e *state.Engine) *SketchWidget {
	b := e.Bounds()
	w := &SketchWidget{
		engine:  e,
		surface: &objectSurface{bg: e.Palette().Background},
		size:    fyne.NewSize(float32(b.Width), float32(b.Height)),
	}
	w.ExtendBaseWidget(w)
	return w
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (w *SketchWidget) Tapped(e *fyne.PointEvent) {
	w.engine.Click(toPoint(e.Position))
}

// TappedSecondary cancels the point being placed. Implementing it keeps
// fyne from opening a context menu.
func (w *SketchWidget) TappedSecondary(*fyne.PointEvent) {
	w.engine.RightClick()
}

func (w *SketchWidget) MouseIn(e *desktop.MouseEvent) {
	w.engine.MouseMove(toPoint(e.Position))
}

func (w *SketchWidget) MouseMoved(e *desktop.MouseEvent) {
	w.engine.MouseMove(toPoint(e.Position))
}

func (w *SketchWidget) MouseOut() {}

// Collapse is wired to the toolbar button.
func (w *SketchWidget) Collapse() {
	w.engine.Collapse()
}

// SetSegmentColor changes the colour completed and preview segments are
// drawn with.
func (w *SketchWidget) SegmentColor() color.Color {
	return w.engine.Palette().Segment.Color
}

func (w *SketchWidget) SetSegmentColor(c color.Color) {
	p := w.engine.Palette()
	p.Segment.Color = c
	w.engine.SetPalette(p)
}

// Frame runs a single engine frame and refreshes the widget. It must be
// called on the fyne main goroutine.
func (w *SketchWidget) Frame() {
	w.engine.Loop(w.surface)
	w.presented()
}

func (w *SketchWidget) presented() {
	w.Refresh()
	if w.OnFrame != nil {
		w.OnFrame(w.engine.Status())
	}
}

// Start begins the frame loop at hz frames per second. Frames are handed to
// the main goroutine with fyne.Do.
func (w *SketchWidget) Start(ctx context.Context, hz int) {
	w.Stop()
	w.stop = w.engine.Start(ctx, hz, w.surface, func(loop func()) {
		fyne.Do(func() {
			loop()
			w.presented()
		})
	})
	log.Printf("[UI] Frame loop started at %d Hz", hz)
}

// Stop tears down the frame loop started by Start.
func (w *SketchWidget) Stop() {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
}

// SaveSnapshot writes the current frame to writer and closes it.
func (w *SketchWidget) SaveSnapshot(writer fyne.URIWriteCloser) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing snapshot writer: %v", err)
		}
	}()

	f, err := export.FormatFromPath(writer.URI().Path())
	if err != nil {
		return err
	}
	if err := export.Write(writer, f, w.engine); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: w}
	r.background = canvas.NewRectangle(w.surface.background())
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objs := r.sketch.surface.snapshot()
	return append([]fyne.CanvasObject{r.background}, objs...)
}

func (r *sketchRenderer) Refresh() {
	r.background.FillColor = r.sketch.surface.background()
	r.background.Refresh()
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return r.sketch.size
}

func (r *sketchRenderer) Destroy() {}

// objectSurface turns draw calls into fyne canvas objects.
type objectSurface struct {
	mu      sync.RWMutex
	bg      color.Color
	objects []fyne.CanvasObject
}

func (s *objectSurface) Clear(_, _ float64, bg color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bg = bg
	s.objects = nil
}

func (s *objectSurface) Segment(a, b state.Point, st state.Style) {
	line := canvas.NewLine(st.Color)
	line.StrokeWidth = float32(st.Width)
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	s.add(line)
}

func (s *objectSurface) Circle(c state.Point, r float64, st state.Style) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = st.Color
	circle.StrokeWidth = float32(st.Width)
	circle.Position1 = fyne.NewPos(float32(c.X-r), float32(c.Y-r))
	circle.Position2 = fyne.NewPos(float32(c.X+r), float32(c.Y+r))
	s.add(circle)
}

func (s *objectSurface) add(o fyne.CanvasObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, o)
}

func (s *objectSurface) background() color.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bg
}

func (s *objectSurface) snapshot() []fyne.CanvasObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fyne.CanvasObject, len(s.objects))
	copy(out, s.objects)
	return out
}
