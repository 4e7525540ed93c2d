package life

import "golife/internal/core"

// Next applies the B3/S23 rule: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3, everything else is dead.
func Next(state uint8, neighbors int) uint8 {
	if neighbors == 3 || (state == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// Neighbors counts the live cells among the 8 wrapped neighbours of (row, col).
// On a 1x1 grid every offset lands on the cell itself.
func Neighbors(g *core.Grid, row, col int) int {
	n := g.N
	cells := g.Cells()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + n) % n
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + n) % n
			count += int(cells[r*n+c])
		}
	}
	return count
}
