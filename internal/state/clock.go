package state

import "time"

// MaxStep caps a single frame delta, in seconds.
const MaxStep = 0.05

// Clock provides the current time.
// Tests swap in a manual clock to drive the Timer.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Timer measures wall-clock time between frames.
type Timer struct {
	clock    Clock
	last     time.Time
	gameTime float64
	maxStep  float64
}

func NewTimer(c Clock) *Timer {
	if c == nil {
		c = SystemClock
	}
	return &Timer{clock: c, maxStep: MaxStep}
}

// Tick returns the seconds elapsed since the previous call, clamped to
// MaxStep, and adds them to the accumulated game time.
func (t *Timer) Tick() float64 {
	now := t.clock.Now()
	var delta float64
	if t.last.IsZero() {
		delta = t.maxStep
	} else {
		delta = now.Sub(t.last).Seconds()
	}
	t.last = now

	if delta > t.maxStep {
		delta = t.maxStep
	}
	if delta < 0 {
		delta = 0
	}
	t.gameTime += delta
	return delta
}

func (t *Timer) GameTime() float64 { return t.gameTime }
