package core

import "strings"

// Cell states. Any other value never appears in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// MaxGridSize bounds the side of a Grid so that N*N cells fit in memory and
// never overflow int.
const MaxGridSize = 1 << 15

// Grid stores an N*N board of Alive/Dead cells in row-major order.
// Coordinates wrap around both axes, so the board is a torus.
type Grid struct {
	N    int
	data []uint8
}

// NewGrid allocates an all-dead grid of side n.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, InvalidArgumentf("grid size %d must be positive", n)
	}
	if n > MaxGridSize {
		return nil, InvalidArgumentf("grid size %d exceeds maximum %d", n, MaxGridSize)
	}
	return &Grid{N: n, data: make([]uint8, n*n)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.N, H: g.N} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col) after wrapping.
func (g *Grid) Index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.N + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.N + g.N) % g.N
	col = (col%g.N + g.N) % g.N
	return row, col
}

// At returns the cell state at (row, col).
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// IsAlive reports whether the cell at (row, col) is alive.
func (g *Grid) IsAlive(row, col int) bool { return g.At(row, col) == Alive }

// Set stores alive/dead at (row, col).
func (g *Grid) Set(row, col int, alive bool) {
	v := Dead
	if alive {
		v = Alive
	}
	g.data[g.Index(row, col)] = v
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{N: g.N, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.N != o.N {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// String renders one text row per grid row, '#' for alive and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.N * (g.N + 1))
	for r := 0; r < g.N; r++ {
		for _, c := range g.data[r*g.N : (r+1)*g.N] {
			if c == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
