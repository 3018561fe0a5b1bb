package analysis

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dx, dy) neighbour steps for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Region is one connected set of cells sharing Value.
// Cells holds row-major indices, the first being the region's smallest index.
type Region struct {
	Value int
	Cells []int
}

// Summary describes the height distribution of a grid.
//
// Counts[h] – cells holding h grains, for h in 0..3.
// Other     – cells outside 0..3 (non-zero only for unstable grids).
// Mass      – total grains on the grid.
type Summary struct {
	Counts [4]int
	Other  int
	Mass   int
}
