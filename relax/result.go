// SPDX-License-Identifier: MIT

package relax

import "time"

// Result is the stable grid assembled on the root, plus run statistics.
// Cells holds Height×Width interior values in row-major order; the sink
// border is implicit and always 0.
type Result struct {
	Height, Width int
	Workers       int
	Variant       Variant
	Cells         []int
	Sweeps        int
	Elapsed       time.Duration
}

// At returns interior cell (row, col). Panics when out of range, like a slice
// index.
func (r *Result) At(row, col int) int {
	return r.Cells[row*r.Width+col]
}

// Rows returns the cells as Height slices of Width values. The slices alias
// Cells.
func (r *Result) Rows() [][]int {
	rows := make([][]int, r.Height)
	for y := range rows {
		rows[y] = r.Cells[y*r.Width : (y+1)*r.Width : (y+1)*r.Width]
	}

	return rows
}

func newResult(cfg Config, v Variant, workers int, cells []int, sweeps int, elapsed time.Duration) *Result {
	cfg.enter(v, Stable)
	cfg.logf("Ran in (%f) seconds", elapsed.Seconds())

	return &Result{
		Height:  cfg.Height,
		Width:   cfg.Width,
		Workers: workers,
		Variant: v,
		Cells:   cells,
		Sweeps:  sweeps,
		Elapsed: elapsed,
	}
}
