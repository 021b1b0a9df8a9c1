package gridgraph

import "fmt"

// DefaultThreshold is the luminance cutoff used for image-backed grids:
// gray values >= 200 are open, anything darker is wall.
const DefaultThreshold = 200

// Coord is an immutable (x, y) cell address; usable as a map key.
type Coord struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Threshold specifies the minimum cell value considered "open".
	Threshold int
}

// DefaultGridOptions returns a GridOptions with Threshold=DefaultThreshold.
func DefaultGridOptions() GridOptions {
	return GridOptions{Threshold: DefaultThreshold}
}

// GridGraph treats a 2D field of cell values as an implicit 4-connected graph.
// It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Threshold     int
}

// neighborOffsets is the fixed expansion order: west, east, north, south.
// Traversal results (notably which path DFS finds) depend on it; the
// traverse engine keeps its own copy that must stay in sync.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
