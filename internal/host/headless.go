package host

import (
	"context"
	"fmt"
	"log"
	"time"

	"LineSketch/internal/config"
	"LineSketch/internal/export"
	"LineSketch/internal/state"
)

// RunHeadless drives the engine from a ticker instead of a window. Scripted
// clicks are delivered one per frame, then collapse is pressed if asked for.
// When cfg.Headless.Out is set the final frame is written there.
func RunHeadless(ctx context.Context, cfg config.Config, e *state.Engine) error {
	hz := cfg.Hz
	if hz <= 0 {
		hz = state.DefaultHz
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hz)
	}

	hc := cfg.Headless
	clicks := hc.Clicks
	pressed := !hc.Collapse

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
loop:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		switch {
		case len(clicks) > 0:
			e.MouseMove(clicks[0])
			e.Click(clicks[0])
			clicks = clicks[1:]
		case !pressed:
			e.Collapse()
			pressed = true
		}

		e.Advance()
		tick++

		if hc.Ticks > 0 {
			if tick >= hc.Ticks {
				break loop
			}
			continue
		}
		if len(clicks) == 0 && pressed && !e.Collapsing() {
			break loop
		}
	}

	st := e.Status()
	log.Printf("[HOST] Headless run finished after %d frames: %d entities, %d complete lines",
		tick, st.Entities, st.Complete)

	if hc.Out == "" {
		return nil
	}
	if err := export.WriteFile(hc.Out, e); err != nil {
		return fmt.Errorf("headless snapshot: %w", err)
	}
	return nil
}
