package state

import (
	"log"
)

// input is the raw mouse state forwarded by a frontend.
type input struct {
	click      *Point
	rightClick bool
	mouse      Point
	hasMouse   bool
}

// Engine owns the world: its entities, the surface size and the input
// gathered since the previous frame.
type Engine struct {
	entities  []Entity
	width     float64
	height    float64
	input     input
	collapse  bool
	palette   Palette
	clock     Clock
	timer     *Timer
	clockTick float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source for the frame timer.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithPalette(p Palette) Option {
	return func(e *Engine) { e.palette = p }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		entities: make([]Entity, 0),
		palette:  DefaultPalette(),
		clock:    SystemClock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init captures the surface size and starts the frame timer.
func (e *Engine) Init(width, height float64) {
	e.width = width
	e.height = height
	e.timer = NewTimer(e.clock)
	log.Printf("[ENGINE] Initialized %gx%g surface", width, height)
}

func (e *Engine) AddEntity(ent Entity) {
	e.entities = append(e.entities, ent)
}

// Click records a left click to be consumed on the next frame. Clicks
// without finite coordinates are dropped.
func (e *Engine) Click(p Point) {
	if !p.Finite() {
		log.Printf("[ENGINE] Ignoring click at %v", p)
		return
	}
	e.input.click = &p
}

// RightClick records a right click to be consumed on the next frame.
func (e *Engine) RightClick() {
	e.input.rightClick = true
}

func (e *Engine) MouseMove(p Point) {
	if !p.Finite() {
		return
	}
	e.input.mouse = p
	e.input.hasMouse = true
}

// Collapse switches the engine into collapse mode. It ends on its own once a
// single entity is left.
func (e *Engine) Collapse() {
	if !e.collapse {
		log.Printf("[ENGINE] Collapse started with %d entities", len(e.entities))
	}
	e.collapse = true
}

func (e *Engine) Collapsing() bool { return e.collapse }

// Mouse returns the last known mouse position; ok is false until the mouse
// has moved over the surface.
func (e *Engine) Mouse() (Point, bool) {
	return e.input.mouse, e.input.hasMouse
}

func (e *Engine) pendingClick() (Point, bool) {
	if e.input.click == nil {
		return Point{}, false
	}
	return *e.input.click, true
}

func (e *Engine) Palette() Palette { return e.palette }

func (e *Engine) SetPalette(p Palette) { e.palette = p }

// Bounds is the surface area captured by Init.
func (e *Engine) Bounds() Area {
	return Area{Width: e.width, Height: e.height}
}

// Entities returns a snapshot of the entity list in creation order.
func (e *Engine) Entities() []Entity {
	out := make([]Entity, len(e.entities))
	copy(out, e.entities)
	return out
}

// Lines returns every entity of kind line, in creation order.
func (e *Engine) Lines() []*Line {
	lines := make([]*Line, 0, len(e.entities))
	for _, ent := range e.entities {
		if ent.Kind() != KindLine {
			continue
		}
		if l, ok := ent.(*Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// earlierLines returns the complete lines created before self.
func (e *Engine) earlierLines(self Entity) []*Line {
	var out []*Line
	for _, ent := range e.entities {
		if ent == self {
			break
		}
		if ent.Kind() != KindLine {
			continue
		}
		if l, ok := ent.(*Line); ok && l.Complete() {
			out = append(out, l)
		}
	}
	return out
}

// Update advances the world by one frame.
func (e *Engine) Update() {
	count := len(e.entities)

	if e.collapse {
		if count <= 1 {
			e.collapse = false
			log.Println("[ENGINE] Collapse finished")
			return
		}
		for _, l := range e.Lines() {
			if l.Len() > 0 {
				l.setPoints(l.ReduceEqually())
			}
		}
	}

	// Entities added during this pass are first updated next frame.
	for i := 0; i < count; i++ {
		ent := e.entities[i]
		if !ent.Removed() {
			ent.Update()
		}
	}

	for i := len(e.entities) - 1; i >= 0; i-- {
		if e.entities[i].Removed() {
			e.entities = append(e.entities[:i], e.entities[i+1:]...)
		}
	}
}

// Draw clears s and draws every entity in order.
func (e *Engine) Draw(s Surface) {
	s.Clear(e.width, e.height, e.palette.Background)
	for _, ent := range e.entities {
		ent.Draw(s)
	}
}

// Loop runs one frame: tick, update, draw, then drop the one-shot input.
func (e *Engine) Loop(s Surface) {
	e.tick()
	e.Update()
	e.Draw(s)
	e.resetInput()
}

// Advance runs one frame without drawing, for hosts that draw on their own
// schedule.
func (e *Engine) Advance() {
	e.tick()
	e.Update()
	e.resetInput()
}

func (e *Engine) tick() {
	if e.timer == nil {
		e.timer = NewTimer(e.clock)
	}
	e.clockTick = e.timer.Tick()
}

func (e *Engine) resetInput() {
	e.input.click = nil
	e.input.rightClick = false
}

// ClockTick is the clamped delta of the last frame, in seconds.
func (e *Engine) ClockTick() float64 { return e.clockTick }

func (e *Engine) GameTime() float64 {
	if e.timer == nil {
		return 0
	}
	return e.timer.GameTime()
}

// Status summarizes the engine for display.
type Status struct {
	Entities   int
	Complete   int
	Collapsing bool
	GameTime   float64
}

func (e *Engine) Status() Status {
	st := Status{
		Entities:   len(e.entities),
		Collapsing: e.collapse,
		GameTime:   e.GameTime(),
	}
	for _, l := range e.Lines() {
		if l.Complete() {
			st.Complete++
		}
	}
	return st
}
