package ui

import (
	"testing"

	"golife/internal/core"
	"golife/internal/life"
)

func TestStatus(t *testing.T) {
	g, _ := core.NewGrid(4)
	g.Set(1, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	sim := life.FromGrid(g)
	sim.Step()

	if got, want := Status(sim), "gen 1  alive 4 (25.0%)"; got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
}
