// SPDX-License-Identifier: MIT

package relax

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sandpile/grid"
)

// Run relaxes cfg with the chosen variant. Serial and Shared check ctx once
// before starting; Distributed watches it for the whole run.
func Run(ctx context.Context, cfg Config, v Variant) (*Result, error) {
	switch v {
	case VariantSerial, VariantShared:
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Run(%s): %w", v, err)
		}
		if v == VariantSerial {
			return Serial(cfg)
		}
		return Shared(cfg)
	case VariantDistributed:
		return Distributed(ctx, cfg)
	default:
		return nil, fmt.Errorf("Run(%s): %w", v, ErrUnknownVariant)
	}
}

// Step applies one synchronous sweep to a row-major height×width buffer and
// reports whether any cell changed. The input is not modified.
// Returns ErrBadDimensions if the shape is invalid or disagrees with len(cells),
// and grid.ErrNegativeGrains if any cell is below zero.
func Step(cells []int, height, width int) ([]int, bool, error) {
	if height < 1 || width < 1 || len(cells) != height*width {
		return nil, false, fmt.Errorf("Step(%d cells, %dx%d): %w", len(cells), height, width, ErrBadDimensions)
	}
	b, err := grid.NewBand(height, width)
	if err != nil {
		return nil, false, fmt.Errorf("Step: %w", err)
	}
	if err = b.Seed(0, func(row, col int) int { return cells[row*width+col] }); err != nil {
		return nil, false, fmt.Errorf("Step: %w", err)
	}
	changed := b.Sweep(0, height)
	b.Swap()

	return b.Interior(), changed, nil
}
