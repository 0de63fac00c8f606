package systems

// DensityGrid counts particles per square cell.
type DensityGrid struct {
	Cols, Rows int
	CellSize   int
	Counts     []int // row-major, Cols*Rows
	Max        int   // largest count, never below 1
	Total      int   // particles binned
}

// RebuildDensity bins particles into a fresh grid.
// Non-positive cell sizes are treated as 1.
func RebuildDensity(particles []Particle, cellSize int, bounds Bounds) DensityGrid {
	var g DensityGrid
	g.reset(cellSize, bounds)
	for i := range particles {
		g.insert(particles[i].X, particles[i].Y)
	}
	g.finish()
	return g
}

// Count returns the particle count of a cell, or 0 outside the grid.
func (g *DensityGrid) Count(col, row int) int {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return 0
	}
	return g.Counts[row*g.Cols+col]
}

// Intensity returns count/Max for a cell, in [0, 1].
func (g *DensityGrid) Intensity(col, row int) float64 {
	if g.Max <= 0 {
		return 0
	}
	return float64(g.Count(col, row)) / float64(g.Max)
}

// Occupied returns the number of cells with at least one particle.
func (g *DensityGrid) Occupied() int {
	n := 0
	for _, c := range g.Counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// reset sizes the grid for bounds and zeroes every count, reusing storage.
func (g *DensityGrid) reset(cellSize int, bounds Bounds) {
	if cellSize < 1 {
		cellSize = 1
	}
	cols := ceilDiv(bounds.Width, cellSize)
	rows := ceilDiv(bounds.Height, cellSize)

	g.Cols, g.Rows, g.CellSize = cols, rows, cellSize
	g.Max, g.Total = 0, 0

	n := cols * rows
	if cap(g.Counts) < n {
		g.Counts = make([]int, n)
		return
	}
	g.Counts = g.Counts[:n]
	clear(g.Counts)
}

func (g *DensityGrid) insert(x, y float64) {
	col := int(x) / g.CellSize
	row := int(y) / g.CellSize
	if x < 0 || y < 0 || col >= g.Cols || row >= g.Rows {
		return
	}
	idx := row*g.Cols + col
	g.Counts[idx]++
	g.Total++
	if g.Counts[idx] > g.Max {
		g.Max = g.Counts[idx]
	}
}

func (g *DensityGrid) finish() {
	if g.Max < 1 {
		g.Max = 1
	}
}

func ceilDiv(size float64, cell int) int {
	if size <= 0 {
		return 0
	}
	n := int(size) / cell
	if float64(n*cell) < size {
		n++
	}
	return n
}
