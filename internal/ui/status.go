package ui

import (
	"fmt"

	"golife/internal/core"
)

// Status formats the one-line summary shown under the grid.
func Status(sim core.Sim) string {
	size := sim.Size()
	total := size.W * size.H
	pop := sim.Grid().Population()
	density := 0.0
	if total > 0 {
		density = float64(pop) / float64(total) * 100
	}
	return fmt.Sprintf("gen %d  alive %d (%.1f%%)", sim.Generation(), pop, density)
}
