// Package partition splits the interior rows of a grid into contiguous,
// rank-ordered bands, one per worker.
//
// For height rows and n workers, base = height/n and rem = height%n; ranks
// 0..rem-1 own base+1 rows and the rest own base rows. Ranges never overlap,
// never leave gaps, and always sum to height.
//
// When n > height the trailing ranks own zero rows. Such ranks are idle
// participants: they skip compute and halo exchange but still join every
// collective step, so peers never wait on a barrier that cannot complete.
// Because idle ranks are always at the tail, adjacency between active ranks is
// still plain rank±1.
package partition
