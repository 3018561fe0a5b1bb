package partition_test

import (
	"fmt"

	"github.com/katalvlaran/sandpile/partition"
)

// ExamplePlan splits 10 rows across 4 workers: the first 10%4 = 2 ranks get
// one extra row.
func ExamplePlan() {
	plan, _ := partition.Plan(10, 4)
	for _, r := range plan {
		fmt.Printf("rank %d: rows [%d,%d)\n", r.Rank, r.Start, r.End())
	}
	// Output:
	// rank 0: rows [0,3)
	// rank 1: rows [3,6)
	// rank 2: rows [6,8)
	// rank 3: rows [8,10)
}
