// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/sandpile/grid"
	"github.com/katalvlaran/sandpile/partition"
)

// Shared relaxes one band with cfg.Workers goroutines per sweep. Each
// goroutine sweeps its own partition.Plan row range of the shared buffers and
// reports a private changed flag; the flags are OR-ed once all have finished.
// Cells are never locked: ranges are disjoint and reads come from the buffer
// nobody writes.
func Shared(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Shared: %w", err)
	}
	cfg.enter(VariantShared, Initializing)
	b, err := grid.NewBand(cfg.Height, cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("Shared: %w", err)
	}
	if err = b.Seed(0, cfg.seed()); err != nil {
		return nil, fmt.Errorf("Shared: %w", err)
	}
	plan, err := partition.Plan(cfg.Height, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("Shared: %w", err)
	}
	plan = plan[:partition.Active(plan)]

	cfg.enter(VariantShared, Sweeping)
	start := time.Now()
	flags := make([]bool, len(plan))
	sweeps := 0
	for changed := true; changed; {
		var wg sync.WaitGroup
		for i, r := range plan {
			wg.Add(1)
			go func() {
				defer wg.Done()
				flags[i] = b.Sweep(r.Start, r.End())
			}()
		}
		wg.Wait()

		changed = false
		for _, f := range flags {
			changed = changed || f
		}
		b.Swap()
		sweeps++
		cfg.notify(sweeps, changed)
	}

	return newResult(cfg, VariantShared, cfg.Workers, b.Interior(), sweeps, time.Since(start)), nil
}
