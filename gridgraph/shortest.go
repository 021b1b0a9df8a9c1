package gridgraph

import (
	"container/list"
)

// ShortestPath finds a minimum-edge path from src to dst over open cells and
// returns it start-first, together with its length in edges.
// dst is accepted even if it is a wall, mirroring exit cells that sit on the
// maze border.
//
// Behavior:
//  1. Validate both coordinates and that src is open.
//  2. Plain BFS from src with a FIFO deque and a prev[] array.
//  3. Stop when dst is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H) time, Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) ShortestPath(src, dst Coord) (path []Coord, dist int, err error) {
	if !gg.InBounds(src.X, src.Y) || !gg.InBounds(dst.X, dst.Y) {
		return nil, 0, ErrOutOfBounds
	}
	if src != dst && !gg.IsOpen(src.X, src.Y) {
		return nil, 0, ErrNoPath
	}

	N := gg.Width * gg.Height
	depth := make([]int, N)
	prev := make([]int, N)
	for i := range depth {
		depth[i] = -1
		prev[i] = -1
	}

	s, t := gg.index(src.X, src.Y), gg.index(dst.X, dst.Y)
	depth[s] = 0
	dq := list.New()
	dq.PushBack(s)

	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == t {
			found = true
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			if depth[v] >= 0 || (v != t && !gg.IsOpen(vx, vy)) {
				continue
			}
			depth[v] = depth[u] + 1
			prev[v] = u
			dq.PushBack(v)
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := t; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		path = append([]Coord{{X: x, Y: y}}, path...)
	}

	return path, depth[t], nil
}
