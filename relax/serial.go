// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sandpile/grid"
)

// Serial relaxes the whole grid on the calling goroutine. The consensus step
// degenerates to the band's own changed flag.
// Complexity: O(sweeps×H×W) time, O(H×W) memory.
func Serial(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Serial: %w", err)
	}
	cfg.enter(VariantSerial, Initializing)
	b, err := grid.NewBand(cfg.Height, cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("Serial: %w", err)
	}
	if err = b.Seed(0, cfg.seed()); err != nil {
		return nil, fmt.Errorf("Serial: %w", err)
	}

	cfg.enter(VariantSerial, Sweeping)
	start := time.Now()
	sweeps := 0
	for changed := true; changed; {
		changed = b.Sweep(0, b.Rows())
		b.Swap()
		sweeps++
		cfg.notify(sweeps, changed)
	}

	return newResult(cfg, VariantSerial, 1, b.Interior(), sweeps, time.Since(start)), nil
}
