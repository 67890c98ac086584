package ui

import (
	"context"

	"LineSketch/internal/config"
	"LineSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp shows the sketch window and blocks until it is closed or ctx is
// done.
func RunApp(ctx context.Context, cfg config.Config, e *state.Engine) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Line Sketch")
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height+60)))

	sketch := NewSketchWidget(e)
	status := widget.NewLabel("Ready")

	last := ""
	sketch.OnFrame = func(st state.Status) {
		if text := statusText(st); text != last {
			last = text
			status.SetText(text)
		}
	}

	toolbar := NewToolbar(sketch, myWindow, status)
	content := container.NewBorder(toolbar, status, nil, nil, sketch)
	myWindow.SetContent(content)

	sketch.Start(ctx, cfg.Hz)
	myWindow.SetOnClosed(sketch.Stop)

	go func() {
		<-ctx.Done()
		fyne.Do(myApp.Quit)
	}()

	myWindow.ShowAndRun()
	sketch.Stop()
}
