package host

import (
	"context"
	"errors"
	"image"
	"image/color"

	"LineSketch/internal/config"
	"LineSketch/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// collapseButton is the on-screen area that triggers collapse.
var collapseButton = image.Rect(8, 8, 88, 30)

// RunWindow opens an ebiten window driving e. It blocks until the window is
// closed or ctx is done.
func RunWindow(ctx context.Context, cfg config.Config, e *state.Engine) error {
	g := &sketchGame{ctx: ctx, engine: e, width: cfg.Width, height: cfg.Height}

	ebiten.SetWindowTitle("Line Sketch")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.Hz)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type sketchGame struct {
	ctx    context.Context
	engine *state.Engine
	width  int
	height int
}

func (g *sketchGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	p := state.Point{X: float64(x), Y: float64(y)}
	g.engine.MouseMove(p)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.leftPress(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.engine.RightClick()
	}

	g.engine.Advance()
	return nil
}

// leftPress collapses when the button is hit and places a point otherwise.
func (g *sketchGame) leftPress(x, y int) {
	if image.Pt(x, y).In(collapseButton) {
		g.engine.Collapse()
		return
	}
	g.engine.Click(state.Point{X: float64(x), Y: float64(y)})
}

func (g *sketchGame) Draw(screen *ebiten.Image) {
	g.engine.Draw(screenSurface{dst: screen})
	drawCollapseButton(screen, g.engine.Collapsing())
}

func (g *sketchGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func drawCollapseButton(dst *ebiten.Image, active bool) {
	r := collapseButton
	fill := color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	if active {
		fill = color.NRGBA{R: 255, G: 210, B: 210, A: 255}
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, color.Black, false)
	ebitenutil.DebugPrintAt(dst, "Collapse", r.Min.X+12, r.Min.Y+4)
}

// screenSurface draws onto an ebiten image with vector strokes.
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) Clear(_, _ float64, bg color.Color) {
	s.dst.Fill(bg)
}

func (s screenSurface) Segment(a, b state.Point, st state.Style) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(st.Width), st.Color, true)
}

func (s screenSurface) Circle(c state.Point, r float64, st state.Style) {
	vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(r), float32(st.Width), st.Color, true)
}
