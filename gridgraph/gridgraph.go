package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		CellValues: cells,
		Threshold:  opts.Threshold,
	}, nil
}

// From2D builds a GridGraph where any value ≥ 1 is open. Handy for fixtures
// written as 0/1 matrices.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Threshold: 1})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is in bounds and traversable.
// Complexity: O(1).
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.Threshold
}

// Bounds returns (width, height).
func (gg *GridGraph) Bounds() (width, height int) {
	return gg.Width, gg.Height
}

// OpenCount returns the number of open cells.
// Complexity: O(W×H).
func (gg *GridGraph) OpenCount() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] >= gg.Threshold {
				n++
			}
		}
	}

	return n
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the fixed
// order west, east, north, south. Walls are included; callers filter.
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}

	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
