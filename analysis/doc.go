// Package analysis inspects a relaxed sandpile held as a row-major []int.
//
// What:
//
//   - Summarize counts cells per height 0..3, cells outside that range, and
//     the total number of grains.
//   - IsStable reports whether every cell is below the toppling threshold.
//   - Regions treats the grid as a graph and returns the connected regions of
//     equal-valued cells, under 4- or 8-neighbour connectivity.
//
// Complexity:
//
//   - Summarize, IsStable: O(W×H).
//   - Regions: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below 1.
//   - ErrDimensionMismatch: len(cells) differs from width×height.
package analysis
