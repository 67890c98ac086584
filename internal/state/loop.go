package state

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultHz is the frame rate used when none is configured.
const DefaultHz = 60

// Start calls frame hz times per second until ctx is done or the returned
// stop function is called. stop waits for the ticker goroutine to exit and
// is safe to call more than once.
//
// frame runs on the ticker goroutine; callers owning a UI thread are expected
// to hop onto it from inside frame.
func Start(ctx context.Context, hz int, frame func()) (stop func()) {
	if hz <= 0 {
		hz = DefaultHz
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		t := time.NewTicker(time.Second / time.Duration(hz))
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				frame()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
			log.Println("[ENGINE] Frame loop stopped")
		})
	}
}

// Start runs Loop onto s hz times per second. When schedule is set each frame
// is handed to it instead of running on the ticker goroutine.
func (e *Engine) Start(ctx context.Context, hz int, s Surface, schedule func(func())) (stop func()) {
	run := func() { e.Loop(s) }
	return Start(ctx, hz, func() {
		if schedule == nil {
			run()
			return
		}
		schedule(run)
	})
}
