package partition

import "fmt"

// Range is the contiguous band of global interior rows [Start, Start+Rows)
// owned by one rank.
type Range struct {
	Rank  int
	Start int
	Rows  int
}

// End returns one past the last owned row.
func (r Range) End() int { return r.Start + r.Rows }

// Idle reports whether the rank owns no rows.
func (r Range) Idle() bool { return r.Rows == 0 }

// Plan assigns height rows to workers ranks. The first height%workers ranks
// receive one extra row. Returns ErrBadHeight or ErrBadWorkers on invalid
// input; workers > height is valid and yields idle trailing ranks.
// Complexity: O(workers).
func Plan(height, workers int) ([]Range, error) {
	if height < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): %w", height, workers, ErrBadHeight)
	}
	if workers < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): %w", height, workers, ErrBadWorkers)
	}
	base, rem := height/workers, height%workers
	plan := make([]Range, workers)
	start := 0
	for rank := range plan {
		rows := base
		if rank < rem {
			rows++
		}
		plan[rank] = Range{Rank: rank, Start: start, Rows: rows}
		start += rows
	}

	return plan, nil
}

// Active returns the number of ranks that own at least one row.
func Active(plan []Range) int {
	n := 0
	for _, r := range plan {
		if !r.Idle() {
			n++
		}
	}

	return n
}

// Counts returns the number of interior cells each rank owns for a grid of
// the given width, in rank order.
func Counts(plan []Range, width int) []int {
	counts := make([]int, len(plan))
	for i, r := range plan {
		counts[i] = r.Rows * width
	}

	return counts
}

// Offsets returns the exclusive prefix sum of counts: the position of each
// rank's first cell in the row-major global buffer.
func Offsets(counts []int) []int {
	offsets := make([]int, len(counts))
	total := 0
	for i, c := range counts {
		offsets[i] = total
		total += c
	}

	return offsets
}

// Neighbours names the ranks a worker exchanges halo rows with.
// HasPrev/HasNext are false at the global top and bottom, where the halo is
// the static sink.
type Neighbours struct {
	Prev, Next       int
	HasPrev, HasNext bool
}

// NeighboursOf returns the active neighbours of rank. Idle ranks have none,
// and an active rank followed by an idle one is the global bottom.
// Returns ErrBadRank if rank is outside the plan.
func NeighboursOf(plan []Range, rank int) (Neighbours, error) {
	if rank < 0 || rank >= len(plan) {
		return Neighbours{}, fmt.Errorf("NeighboursOf(%d): %w", rank, ErrBadRank)
	}
	nb := Neighbours{Prev: rank - 1, Next: rank + 1}
	if plan[rank].Idle() {
		return nb, nil
	}
	nb.HasPrev = rank > 0 && !plan[rank-1].Idle()
	nb.HasNext = rank+1 < len(plan) && !plan[rank+1].Idle()

	return nb, nil
}
