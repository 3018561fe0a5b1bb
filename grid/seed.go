// SPDX-License-Identifier: MIT

package grid

import "fmt"

// DefaultGrains is the reference starting height: every interior cell holds
// four grains, so the whole pile is unstable on the first sweep.
const DefaultGrains = 4

// Seed returns the initial grain count of interior cell (row, col), in global
// interior coordinates (0 ≤ row < height, 0 ≤ col < width).
type Seed func(row, col int) int

// Uniform seeds every interior cell with the same grain count.
func Uniform(grains int) Seed {
	return func(int, int) int { return grains }
}

// CenterPile drops grains on the single centre cell of a height×width grid
// and leaves every other cell empty.
func CenterPile(height, width, grains int) Seed {
	cy, cx := height/2, width/2
	return func(row, col int) int {
		if row == cy && col == cx {
			return grains
		}
		return 0
	}
}

// FromValues seeds from an explicit height×width configuration. The input is
// deep-copied. Cells outside the given rectangle read as 0.
// Returns ErrNonRectangular for ragged rows and ErrNegativeGrains for any
// value below zero.
func FromValues(values [][]int) (Seed, error) {
	if len(values) == 0 {
		return Uniform(0), nil
	}
	w := len(values[0])
	cells := make([][]int, len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("FromValues: row %d: %w", y, ErrNonRectangular)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("FromValues: cell (%d,%d)=%d: %w", y, x, v, ErrNegativeGrains)
			}
		}
		cells[y] = append([]int(nil), row...)
	}

	return func(row, col int) int {
		if row < 0 || row >= len(cells) || col < 0 || col >= w {
			return 0
		}
		return cells[row][col]
	}, nil
}
