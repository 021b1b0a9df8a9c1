package traverse

import (
	"fmt"
)

// neighborOffsets is the fixed push order: west, east, north, south.
// With a stack the last pushed (south) is explored first.
// Must match gridgraph's expansion order (GridGraph.Neighbors).
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// walker encapsulates mutable search state; it lives for one Search call.
type walker struct {
	grid          Grid
	width, height int
	isExit        ExitFunc
	opts          SearchOptions
	frontier      frontier
	discovered    []bool
	res           *Result
}

// Search explores g from start until isExit holds for a dequeued coordinate
// or the frontier is exhausted.
//
// Returns ErrNilGrid, ErrNilExit, ErrOptionViolation or ErrInvalidCoordinate
// for bad input (with a nil Result), ErrNotFound with the partial Result when
// the exit is unreachable, or a wrapped hook error.
func Search(g Grid, start Coord, isExit ExitFunc, mode Mode, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if isExit == nil {
		return nil, ErrNilExit
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, h := g.Bounds()
	if start.X < 0 || start.X >= w || start.Y < 0 || start.Y >= h {
		return nil, fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidCoordinate, start, w, h)
	}
	f, err := newFrontier(mode, w+h)
	if err != nil {
		return nil, err
	}

	wk := &walker{
		grid:       g,
		width:      w,
		height:     h,
		isExit:     isExit,
		opts:       o,
		frontier:   f,
		discovered: make([]bool, w*h),
		res: &Result{
			Mode:   mode,
			Start:  start,
			Parent: make(map[Coord]Coord),
		},
	}

	// Seed frontier with start (no parent)
	wk.frontier.push(start)
	wk.res.Pushes++

	return wk.res, wk.loop()
}

// loop pops coordinates until an exit is dequeued, the frontier empties, or a hook fails.
func (w *walker) loop() error {
	for w.frontier.size() > 0 {
		c := w.frontier.pop()

		// exit wins before the wall/discovered guard
		if w.isExit(c.X, c.Y) {
			w.res.Exit = c
			w.res.Found = true
			return nil
		}

		i := c.Y*w.width + c.X
		if w.discovered[i] || !w.grid.IsOpen(c.X, c.Y) {
			continue
		}
		if err := w.discover(c, i); err != nil {
			return err
		}
		w.pushNeighbors(c)
	}

	return ErrNotFound
}

// discover marks c, records it in Order and runs the hooks.
func (w *walker) discover(c Coord, i int) error {
	w.discovered[i] = true
	n := len(w.res.Order)
	w.res.Order = append(w.res.Order, c)

	if err := w.opts.OnDiscover(c, n); err != nil {
		return fmt.Errorf("traverse: OnDiscover error at %v: %w", c, err)
	}
	if w.opts.SnapshotInterval > 0 && n%w.opts.SnapshotInterval == 0 {
		if err := w.opts.OnSnapshot(n); err != nil {
			return fmt.Errorf("traverse: snapshot %d: %w", n, err)
		}
	}

	return nil
}

// pushNeighbors pushes every in-bounds neighbor of c and records c as its
// discoverer unless an earlier one already claimed it.
func (w *walker) pushNeighbors(c Coord) {
	for _, d := range neighborOffsets {
		nb := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if nb.X < 0 || nb.X >= w.width || nb.Y < 0 || nb.Y >= w.height {
			continue
		}
		w.frontier.push(nb)
		w.res.Pushes++
		if nb == w.res.Start {
			continue
		}
		if _, seen := w.res.Parent[nb]; !seen {
			w.res.Parent[nb] = c
		}
	}
}
