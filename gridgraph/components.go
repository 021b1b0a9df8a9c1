package gridgraph

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ Threshold) under orthogonal connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order from the component's first cell in scan order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood(x, y, seen))
		}
	}

	return comps
}

// ComponentOf returns every open cell reachable from c, c included.
// A wall or out-of-bounds c yields nil.
func (gg *GridGraph) ComponentOf(c Coord) []Coord {
	if !gg.IsOpen(c.X, c.Y) {
		return nil
	}
	seen := make([]bool, gg.Width*gg.Height)
	idxs := gg.flood(c.X, c.Y, seen)
	out := make([]Coord, len(idxs))
	for i, idx := range idxs {
		x, y := gg.Coordinate(idx)
		out[i] = Coord{X: x, Y: y}
	}

	return out
}

// flood collects the open component containing (x0,y0), marking seen.
func (gg *GridGraph) flood(x0, y0 int, seen []bool) []int {
	i0 := gg.index(x0, y0)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
