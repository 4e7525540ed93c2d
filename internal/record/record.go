// Package record drives a simulation without a window and writes the
// generations out as an animated GIF.
package record

import (
	"context"
	"image"
	"image/gif"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/internal/render"
)

// Options control a recording run.
type Options struct {
	// Frames is the number of generations to advance. The output holds
	// Frames+1 images: the initial grid and one per generation.
	Frames   int
	Interval time.Duration
	Scale    int
	Palette  render.Palette
	Logger   *slog.Logger
}

// Result summarizes a recording run.
type Result struct {
	Generations int
	// Population holds the live cell count of every recorded frame.
	Population []int
}

// delay converts a frame interval to GIF delay units of 10ms, rounded to the
// nearest unit, minimum 1.
func delay(interval time.Duration) int {
	d := int(interval.Round(10*time.Millisecond) / (10 * time.Millisecond))
	if d < 1 {
		d = 1
	}
	return d
}

// GIF steps sim opts.Frames times and encodes every generation to w. It stops
// early with ctx.Err() when ctx is cancelled.
func GIF(ctx context.Context, w io.Writer, sim core.Sim, opts Options) (Result, error) {
	if opts.Frames < 0 {
		return Result{}, core.InvalidArgumentf("frame count %d must not be negative", opts.Frames)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	d := delay(opts.Interval)
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, opts.Frames+1),
		Delay: make([]int, 0, opts.Frames+1),
	}
	res := Result{Population: make([]int, 0, opts.Frames+1)}

	capture := func() {
		g := sim.Grid()
		anim.Image = append(anim.Image, render.Frame(g, opts.Palette, opts.Scale))
		anim.Delay = append(anim.Delay, d)
		res.Population = append(res.Population, g.Population())
	}

	capture()
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		sim.Step()
		res.Generations++
		capture()
		if (i+1)%100 == 0 {
			log.Debug("recorded generations", "generation", sim.Generation(), "population", res.Population[len(res.Population)-1])
		}
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return res, errors.Wrap(err, "encode gif")
	}
	return res, nil
}
