// SPDX-License-Identifier: MIT

// Package sandpile relaxes the two-dimensional Abelian sandpile to its stable
// configuration, serially, with shared-memory goroutines, or as a group of
// message-passing ranks that share nothing.
//
// The module is organised as:
//
//	grid/       toppling rule, double-buffered band with halo rows, seeds
//	partition/  row-band decomposition and neighbour ranks
//	comm/       in-process ranks: Send/Recv, halo exchange, OR-allreduce,
//	            max-reduce, variable-size gather, group abort
//	relax/      Serial, Shared and Distributed engines, Run dispatcher
//	analysis/   height histogram, grain mass, equal-height regions
//	render/     palette and PPM/PNG/BMP/TIFF output
//	config/     YAML run settings
//	logging/    timestamped diagnostic lines
//	bench/      repeated timing, CSV report, scaling chart
//	cmd/sandpile/ command-line front end
//
// Quick start:
//
//	res, err := relax.Run(ctx, relax.Config{Height: 513, Width: 513, Workers: 8}, relax.VariantDistributed)
//	if err != nil { … }
//	err = render.WriteFile("sandpile.ppm", res.Cells, res.Width, res.Height)
//
// Every variant applies the same synchronous rule,
//
//	next = v mod 4 + ⌊left/4⌋ + ⌊right/4⌋ + ⌊up/4⌋ + ⌊down/4⌋,
//
// so their results are identical for any worker count.
package sandpile
