package traverse

// ExitFunc reports whether (x,y) is a goal coordinate.
type ExitFunc func(x, y int) bool

// ExitAt returns an ExitFunc matching exactly the given coordinates.
func ExitAt(coords ...Coord) ExitFunc {
	set := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}

	return func(x, y int) bool {
		_, ok := set[Coord{X: x, Y: y}]
		return ok
	}
}

// AnyOf matches when at least one of fns matches.
func AnyOf(fns ...ExitFunc) ExitFunc {
	return func(x, y int) bool {
		for _, fn := range fns {
			if fn(x, y) {
				return true
			}
		}

		return false
	}
}

// ExitRegion is an inclusive axis-aligned rectangle of exit cells.
// A run of pixels along one edge is a region with Min.X == Max.X (or Y).
type ExitRegion struct {
	Min, Max Coord
}

// Contains reports whether (x,y) lies inside r.
func (r ExitRegion) Contains(x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// Within reports whether every cell of r lies inside a width×height grid.
func (r ExitRegion) Within(width, height int) bool {
	return r.Min.X >= 0 && r.Min.Y >= 0 && r.Max.X < width && r.Max.Y < height &&
		r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Cells lists the region's coordinates in row-major order.
func (r ExitRegion) Cells() []Coord {
	var out []Coord
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}

	return out
}

// Regions combines regions into one predicate.
func Regions(rs ...ExitRegion) ExitFunc {
	fns := make([]ExitFunc, len(rs))
	for i, r := range rs {
		fns[i] = r.Contains
	}

	return AnyOf(fns...)
}
