// SPDX-License-Identifier: MIT

// Package relax drives an Abelian sandpile to its stable configuration.
//
// What:
//
//   - Serial relaxes the whole grid as one band on one goroutine.
//   - Shared relaxes one band with Workers goroutines per sweep, each owning a
//     disjoint range of rows; only the changed flags are combined.
//   - Distributed splits the grid into Workers bands that share no memory.
//     Ranks talk only through comm: halo exchange, an all-to-all OR of the
//     changed flag, and a final gather onto rank 0.
//   - Run dispatches on a Variant; Step applies one sweep to a global buffer.
//
// Every variant runs the same synchronous rule, so for a given height, width
// and seed all of them return identical cells and the same sweep count,
// whatever the worker count.
//
// Lifecycle:
//
//	Initializing → Sweeping → Stable
//
// Initializing zeroes both buffers and seeds the interior. Sweeping repeats
// exchange, update, consensus and swap while any cell changed. Stable is
// terminal: every cell holds 0..3 and another sweep changes nothing.
//
// Errors:
//
//   - ErrBadDimensions: height or width below 1.
//   - ErrBadWorkers: fewer than one worker.
//   - ErrUnknownVariant: ParseVariant got an unrecognised name.
//   - grid.ErrNegativeGrains: the seed produced a cell below zero.
//   - comm.ErrAborted: the distributed group was cancelled.
package relax
