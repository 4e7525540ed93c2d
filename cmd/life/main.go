package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golife/internal/app"
	"golife/internal/core"
	_ "golife/internal/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// workerSetter is implemented by simulations that can split a step across
// goroutines.
type workerSetter interface {
	SetWorkers(n int)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := app.Parse(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "life:", err)
		return 1
	}
	log := app.NewLogger(stderr, cfg.Level())

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		fmt.Fprintf(stderr, "life: unknown sim %q\n", cfg.Sim)
		return 1
	}

	seed := core.ResolveSeed(cfg.Seed)
	log.Info("starting game of life",
		"size", cfg.Size, "probability", cfg.Probability, "interval", cfg.Interval(), "seed", seed)
	sim, err := factory(cfg.Size, cfg.Probability, seed)
	if err != nil {
		fmt.Fprintln(stderr, "life:", err)
		return 1
	}
	if ws, ok := sim.(workerSetter); ok {
		ws.SetWorkers(cfg.Workers)
	}
	log.Info("grid initialized", "size", cfg.Size, "population", sim.Grid().Population())
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("initial grid", "cells", "\n"+sim.Grid().String())
	}

	if cfg.Out != "" {
		err = app.Record(ctx, sim, cfg, log)
	} else {
		err = app.Window(ctx, sim, cfg, log)
	}
	switch {
	case errors.Is(err, app.ErrHeadless):
		fmt.Fprintln(stderr, "life:", err)
		return 2
	case err != nil:
		fmt.Fprintln(stderr, "life:", err)
		return 1
	}
	return 0
}
