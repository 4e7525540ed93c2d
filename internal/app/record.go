package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/internal/record"
	"golife/internal/render"
)

// Record runs the simulation headless and writes cfg.Out, plus cfg.Chart when
// set.
func Record(ctx context.Context, sim core.Sim, cfg *Config, log *slog.Logger) error {
	f, err := os.Create(cfg.Out)
	if err != nil {
		return errors.Wrap(err, "create animation file")
	}
	res, err := record.GIF(ctx, f, sim, record.Options{
		Frames:   cfg.Frames,
		Interval: cfg.Interval(),
		Scale:    cfg.Scale,
		Palette:  render.DefaultPalette(),
		Logger:   log,
	})
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close animation file")
	}
	if err != nil {
		removePartial(cfg.Out, log)
		return err
	}
	last := res.Population[len(res.Population)-1]
	log.Info("wrote animation", "path", cfg.Out, "generations", res.Generations, "population", last)

	if cfg.Chart == "" {
		return nil
	}
	cf, err := os.Create(cfg.Chart)
	if err != nil {
		return errors.Wrap(err, "create chart file")
	}
	err = record.PopulationChart(cf, res.Population)
	if cerr := cf.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close chart file")
	}
	if err != nil {
		removePartial(cfg.Chart, log)
		return err
	}
	log.Info("wrote population chart", "path", cfg.Chart)
	return nil
}

func removePartial(path string, log *slog.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("could not remove partial output", "path", path, "err", err)
	}
}
