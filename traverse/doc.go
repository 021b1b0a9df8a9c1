// Package traverse searches a maze grid for a path from a start coordinate to
// any coordinate accepted by an exit predicate.
//
// What
//
//   - One routine, Search, drives both strategies; Mode only picks the
//     frontier discipline:
//   - DFS: last-in-first-out stack
//   - BFS: first-in-first-out queue
//   - Returns a Result containing:
//   - Exit:   the first dequeued coordinate satisfying the exit predicate
//   - Parent: provenance map, coordinate → first discoverer
//   - Order:  discovery sequence
//   - Reconstruct (or Result.Path) turns Parent into a start-first path.
//
// Algorithm
//
//  1. Push start.
//  2. Pop c. If isExit(c), stop: the exit test runs before the wall test, so
//     exit pixels need not be open.
//  3. Skip c unless it is open and undiscovered.
//  4. Mark c discovered, run hooks, then push each in-bounds neighbor in the
//     fixed order west, east, north, south. A neighbor's provenance is
//     recorded only on its first push.
//  5. An empty frontier yields ErrNotFound.
//
// A coordinate may sit in the frontier several times; only the first pop of
// an open cell does work, later copies are dropped by step 3.
//
// Determinism
//
//	The push order is fixed, so for a given grid, start and predicate both
//	modes return the same path on every run. BFS paths are shortest in edge
//	count; DFS paths are merely valid.
//
// Concurrency
//
//	Search is synchronous and owns all of its state. Grids are read-only and
//	may be shared between concurrent searches.
//
// Complexity (N = width × height)
//
//   - Time:   O(N)   (each cell discovered once, at most 4 pushes per discovery)
//   - Memory: O(N)   (discovered flags, provenance map, frontier)
//
// Usage
//
//	res, err := traverse.Search(grid, start, traverse.ExitAt(exit), traverse.BFS,
//		traverse.WithOnDiscover(func(c traverse.Coord, n int) error {
//			canvas.PaintDiscovered(c)
//			return nil
//		}),
//		traverse.WithSnapshot(10000, func(frame int) error {
//			return frames.Snapshot(canvas.Image(), frame)
//		}),
//	)
//	if errors.Is(err, traverse.ErrNotFound) {
//		// no solution
//	}
//	path, err := res.Path()
//
// Errors
//
//   - ErrNilGrid, ErrNilExit     nil inputs.
//   - ErrInvalidCoordinate       start outside the grid.
//   - ErrOptionViolation         bad snapshot interval or unknown Mode.
//   - ErrNotFound                exit unreachable.
//   - ErrCorruptProvenance       broken predecessor chain in Reconstruct.
//   - Wrapped hook errors from OnDiscover / OnSnapshot.
package traverse
