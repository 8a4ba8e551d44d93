package grid

// Region scopes an operation to a rectangular sub-area of the map.
// Regions are ephemeral values; clamp before use.
type Region struct {
	X, Z, W, H int
}

// Clamp restricts the region to a side*side grid: the origin is clamped
// into [0, side-1], then the size is shrunk so the region stays inside.
func (r Region) Clamp(side int) Region {
	if r.X < 0 {
		r.X = 0
	}
	if r.X > side-1 {
		r.X = side - 1
	}
	if r.Z < 0 {
		r.Z = 0
	}
	if r.Z > side-1 {
		r.Z = side - 1
	}
	if r.W > side-r.X {
		r.W = side - r.X
	}
	if r.H > side-r.Z {
		r.H = side - r.Z
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool { return r.W <= 0 || r.H <= 0 }
