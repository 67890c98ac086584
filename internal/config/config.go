package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"LineSketch/internal/state"
)

type Frontend string

const (
	FrontendFyne     Frontend = "fyne"
	FrontendEbiten   Frontend = "ebiten"
	FrontendHeadless Frontend = "headless"
)

var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalidValue    = errors.New("invalid value")
)

// Config is everything the command line controls.
type Config struct {
	Frontend Frontend
	Width    int
	Height   int
	Hz       int
	Verbose  bool
	Headless HeadlessConfig
}

// HeadlessConfig drives a run without a window.
type HeadlessConfig struct {
	// Ticks is the number of frames to run. Zero runs until the click
	// script is drained and any collapse has finished.
	Ticks    uint64
	Clicks   []state.Point
	Collapse bool
	Out      string
}

func Default() Config {
	return Config{
		Frontend: FrontendFyne,
		Width:    1024,
		Height:   768,
		Hz:       state.DefaultHz,
	}
}

// Parse reads flags from args (without the program name).
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	var frontend, clicks string

	fs := flag.NewFlagSet("linesketch", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&frontend, "frontend", string(cfg.Frontend), "Window toolkit: fyne, ebiten or headless.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Surface width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Surface height in pixels.")
	fs.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frames per second.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Log renderer diagnostics.")
	fs.Uint64Var(&cfg.Headless.Ticks, "ticks", 0, "Headless: frames to run (0 = until input and collapse are done).")
	fs.StringVar(&clicks, "clicks", "", `Headless: left clicks to replay, one per frame, e.g. "10,10 50,10".`)
	fs.BoolVar(&cfg.Headless.Collapse, "collapse", false, "Headless: press collapse after the clicks.")
	fs.StringVar(&cfg.Headless.Out, "out", "", "Headless: snapshot file (.png or .pdf).")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch f := Frontend(strings.ToLower(frontend)); f {
	case FrontendFyne, FrontendEbiten, FrontendHeadless:
		cfg.Frontend = f
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFrontend, frontend)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("%w: surface %dx%d", ErrInvalidValue, cfg.Width, cfg.Height)
	}
	if cfg.Hz <= 0 {
		return cfg, fmt.Errorf("%w: hz %d", ErrInvalidValue, cfg.Hz)
	}

	pts, err := ParseClicks(clicks)
	if err != nil {
		return cfg, err
	}
	cfg.Headless.Clicks = pts

	return cfg, nil
}

// ParseClicks reads whitespace separated "x,y" pairs.
func ParseClicks(s string) ([]state.Point, error) {
	fields := strings.Fields(s)
	pts := make([]state.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("%w: click %q is not x,y", ErrInvalidValue, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: click %q: %v", ErrInvalidValue, f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: click %q: %v", ErrInvalidValue, f, err)
		}
		p := state.Point{X: x, Y: y}
		if !p.Finite() {
			return nil, fmt.Errorf("%w: click %q is not finite", ErrInvalidValue, f)
		}
		pts = append(pts, p)
	}
	return pts, nil
}
