// SPDX-License-Identifier: MIT

// Package grid holds the cell-level state of an Abelian sandpile: the
// toppling rule and the double-buffered band of rows a single worker owns.
//
// What:
//
//   - Topple computes one cell's next value from itself and its four neighbours.
//   - Band stores rows×width interior cells plus one halo row above and below
//     and one sink column on each side, in two same-shaped flat buffers.
//   - Seed describes an initial configuration in global interior coordinates.
//
// Layout:
//
//	  s  h  h  h  s     s = sink column (always 0)
//	  s  c  c  c  s     h = halo row (neighbour mirror, or 0 at the global edge)
//	  s  c  c  c  s     c = owned interior cell
//	  s  h  h  h  s
//
// Sweeps read the current buffer and write the next one, so cells inside a
// band may be updated in any order and by any number of goroutines working on
// disjoint row ranges.
//
// Errors:
//
//   - ErrBadShape: negative rows or non-positive width.
//   - ErrOutOfRange: interior accessor used outside the band.
//   - ErrHaloWidth: halo row length differs from the band width.
//   - ErrNonRectangular, ErrNegativeGrains: invalid explicit seed values.
package grid
