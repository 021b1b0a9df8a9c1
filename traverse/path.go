package traverse

import "fmt"

// Reconstruct walks parent links back from exit to start and returns the
// path start-first. start must not be a key of parent.
//
// Returns ErrCorruptProvenance if a non-start coordinate has no predecessor,
// if start itself has one, or if the chain loops.
// Complexity: O(L) for a path of L cells.
func Reconstruct(parent map[Coord]Coord, start, exit Coord) ([]Coord, error) {
	if _, ok := parent[start]; ok {
		return nil, fmt.Errorf("%w: start %v has a predecessor", ErrCorruptProvenance, start)
	}

	// build reversed path
	path := []Coord{exit}
	for cur := exit; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrCorruptProvenance, cur)
		}
		path = append(path, prev)
		// every non-start cell appears at most once on a valid chain
		if len(path) > len(parent)+1 {
			return nil, fmt.Errorf("%w: cycle through %v", ErrCorruptProvenance, prev)
		}
		cur = prev
	}

	// reverse to get start → exit
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
