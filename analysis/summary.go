package analysis

import "github.com/katalvlaran/sandpile/grid"

// Summarize builds the height histogram and grain mass of cells.
// Complexity: O(len(cells)).
func Summarize(cells []int) Summary {
	var s Summary
	for _, v := range cells {
		s.Mass += v
		if v >= 0 && v < len(s.Counts) {
			s.Counts[v]++
			continue
		}
		s.Other++
	}

	return s
}

// IsStable reports whether every cell holds 0..grid.Threshold-1 grains.
func IsStable(cells []int) bool {
	for _, v := range cells {
		if v < 0 || v >= grid.Threshold {
			return false
		}
	}

	return true
}
