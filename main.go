package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"LineSketch/internal/config"
	"LineSketch/internal/host"
	"LineSketch/internal/state"
	"LineSketch/internal/ui"

	"github.com/gogpu/gg"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Line sketch failed: %v", err)
	}
}

func run(cfg config.Config) error {
	if cfg.Verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := state.NewEngine()
	engine.Init(float64(cfg.Width), float64(cfg.Height))
	engine.AddEntity(state.NewLine(engine))

	log.Printf("Starting %s frontend", cfg.Frontend)
	switch cfg.Frontend {
	case config.FrontendEbiten:
		return host.RunWindow(ctx, cfg, engine)
	case config.FrontendHeadless:
		err := host.RunHeadless(ctx, cfg, engine)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		ui.RunApp(ctx, cfg, engine)
		return nil
	}
}
