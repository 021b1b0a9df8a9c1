package traverse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// Sentinel errors for search and reconstruction.
var (
	// ErrNilGrid is returned if a nil grid is passed.
	ErrNilGrid = errors.New("traverse: grid is nil")

	// ErrNilExit is returned if no exit predicate is supplied.
	ErrNilExit = errors.New("traverse: exit predicate is nil")

	// ErrInvalidCoordinate is returned when the start (or a configured exit)
	// lies outside the grid. It is reported before any traversal work.
	ErrInvalidCoordinate = errors.New("traverse: coordinate outside grid bounds")

	// ErrNotFound is returned when the frontier empties without reaching an
	// exit. It is an expected outcome, not a failure of the engine.
	ErrNotFound = errors.New("traverse: exit not reachable from start")

	// ErrCorruptProvenance indicates a broken predecessor chain. It can only
	// be caused by a bug or a hand-built map, never by maze input.
	ErrCorruptProvenance = errors.New("traverse: corrupt provenance map")

	// ErrOptionViolation is returned when an invalid Option or Mode is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Mode selects the frontier discipline.
type Mode int

const (
	// DFS explores with a LIFO stack. Paths are valid but not necessarily shortest.
	DFS Mode = iota
	// BFS explores with a FIFO queue. Paths are shortest in edge count.
	BFS
)

// String returns "dfs" or "bfs".
func (m Mode) String() string {
	switch m {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "dfs" or "bfs", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Coord is re-exported for callers that only deal with traversal.
type Coord = gridgraph.Coord

// Grid is the read-only view the engine needs. *gridgraph.GridGraph satisfies it.
type Grid interface {
	// IsOpen reports whether (x,y) is traversable.
	IsOpen(x, y int) bool
	// Bounds returns (width, height).
	Bounds() (width, height int)
}

// Option configures Search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds callbacks to observe a search as it runs.
type SearchOptions struct {
	// OnDiscover is called once per discovered coordinate, right after it is
	// marked. n is the 0-based discovery ordinal. Returning an error aborts.
	OnDiscover func(c Coord, n int) error

	// SnapshotInterval is the number of discoveries between snapshots.
	// Zero disables snapshots.
	SnapshotInterval int

	// OnSnapshot is called with the discovery ordinal as frame index whenever
	// it is a multiple of SnapshotInterval, after OnDiscover.
	OnSnapshot func(frame int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with no hooks and snapshots disabled.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		OnDiscover:       func(Coord, int) error { return nil },
		SnapshotInterval: 0,
		OnSnapshot:       nil,
	}
}

// WithOnDiscover registers a callback run on every discovery.
func WithOnDiscover(fn func(c Coord, n int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithSnapshot calls fn every interval discoveries, starting with the first.
//
//	interval > 0: snapshot at discoveries 0, interval, 2*interval, ...
//	interval <= 0 or fn == nil: invalid option → ErrOptionViolation
func WithSnapshot(interval int, fn func(frame int) error) Option {
	return func(o *SearchOptions) {
		switch {
		case interval <= 0:
			o.err = fmt.Errorf("%w: snapshot interval must be positive (%d)", ErrOptionViolation, interval)
		case fn == nil:
			o.err = fmt.Errorf("%w: snapshot callback is nil", ErrOptionViolation)
		default:
			o.SnapshotInterval = interval
			o.OnSnapshot = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Found/Exit: whether and where an exit was dequeued.
//   - Parent: provenance map, coordinate → first discoverer. Start is never a key.
//   - Order: coordinates in discovery order (each at most once).
//   - Pushes: total frontier insertions, duplicates included.
type Result struct {
	Mode   Mode
	Start  Coord
	Exit   Coord
	Found  bool
	Parent map[Coord]Coord
	Order  []Coord
	Pushes int
}

// Path reconstructs the start-first solution path.
// Returns ErrNotFound if the search did not reach an exit.
func (r *Result) Path() ([]Coord, error) {
	if !r.Found {
		return nil, ErrNotFound
	}

	return Reconstruct(r.Parent, r.Start, r.Exit)
}
