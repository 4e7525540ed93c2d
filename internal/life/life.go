// Package life implements Conway's Game of Life on a toroidal N*N grid.
package life

import (
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/internal/core"
)

// Initialize returns an n*n grid where each cell is independently alive with
// probability p, drawn from rng.
func Initialize(n int, p float64, rng *core.RNG) (*core.Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, core.InvalidArgumentf("probability %v must be within [0, 1]", p)
	}
	g, err := core.NewGrid(n)
	if err != nil {
		return nil, err
	}
	rng.FillChance(g.Cells(), p)
	return g, nil
}

// Step writes the successor of src into dst. Every read comes from src, so dst
// must be a distinct grid of the same size.
func Step(dst, src *core.Grid) {
	stepRows(dst, src, 0, src.N)
}

// Advance returns the successor of g in a freshly allocated grid.
func Advance(g *core.Grid) *core.Grid {
	next := g.Clone()
	Step(next, g)
	return next
}

// StepParallel is Step split into row bands evaluated by up to workers
// goroutines. The result is identical to Step.
func StepParallel(dst, src *core.Grid, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := src.N
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		Step(dst, src)
		return
	}

	var eg errgroup.Group
	rowsPerWorker := (n + workers - 1) / workers
	for start := 0; start < n; start += rowsPerWorker {
		end := min(start+rowsPerWorker, n)
		eg.Go(func() error {
			stepRows(dst, src, start, end)
			return nil
		})
	}
	// Bands never fail; Wait only joins.
	_ = eg.Wait()
}

func stepRows(dst, src *core.Grid, from, to int) {
	n := src.N
	in := src.Cells()
	out := dst.Cells()
	for r := from; r < to; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			out[idx] = Next(in[idx], Neighbors(src, r, c))
		}
	}
}

// Life owns the current generation and a scratch buffer that are swapped after
// every step.
type Life struct {
	cur, nxt   *core.Grid
	generation int
	workers    int
}

// New returns a Life seeded with an n*n random grid of density p.
func New(n int, p float64, rng *core.RNG) (*Life, error) {
	g, err := Initialize(n, p, rng)
	if err != nil {
		return nil, errors.Wrap(err, "initialize grid")
	}
	return FromGrid(g), nil
}

// FromGrid takes ownership of g as generation zero.
func FromGrid(g *core.Grid) *Life {
	return &Life{cur: g, nxt: g.Clone(), workers: 1}
}

// SetWorkers selects how many goroutines evaluate each step. Values below 2
// keep the step single-threaded.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.workers = n
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Generation returns how many steps have been applied.
func (l *Life) Generation() int { return l.generation }

// Grid exposes the current generation. Callers must not modify it; use
// Snapshot for a copy that outlives the next Step.
func (l *Life) Grid() *core.Grid { return l.cur }

// Snapshot returns a copy of the current generation.
func (l *Life) Snapshot() *core.Grid { return l.cur.Clone() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.workers > 1 {
		StepParallel(l.nxt, l.cur, l.workers)
	} else {
		Step(l.nxt, l.cur)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func init() {
	core.Register("life", func(n int, p float64, seed int64) (core.Sim, error) {
		return New(n, p, core.NewRNG(seed))
	})
}
