// SPDX-License-Identifier: MIT

package relax

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/sandpile/comm"
	"github.com/katalvlaran/sandpile/grid"
	"github.com/katalvlaran/sandpile/partition"
)

// rootRank assembles the result and reports progress.
const rootRank = 0

// Distributed relaxes the grid with cfg.Workers ranks under comm.Run. Each
// rank owns one band and repeats
//
//	exchange halos → sweep → swap → AllreduceOr
//
// until the global flag is false, then the root collects the bands with
// Gatherv and the slowest rank's elapsed time with ReduceMax.
// Idle ranks (Workers > Height) own no rows: they skip the exchange and the
// sweep but join every collective, so no barrier waits on them. An idle rank
// costs one goroutine and its links; its band allocates no cells. Workers is
// not capped, so a very large count mostly buys idle goroutines.
// A seed yielding negative grains fails the owning rank with
// grid.ErrNegativeGrains and aborts the group.
// Any rank failure, or cancelling ctx, aborts the whole group.
func Distributed(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Distributed: %w", err)
	}
	plan, err := partition.Plan(cfg.Height, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("Distributed: %w", err)
	}

	var res *Result
	err = comm.Run(ctx, cfg.Workers, func(ctx context.Context, c *comm.Comm) error {
		cells, sweeps, elapsed, err := relaxRank(ctx, c, cfg, plan)
		if err != nil {
			return err
		}
		if c.Rank() == rootRank {
			res = newResult(cfg, VariantDistributed, cfg.Workers, cells, sweeps, elapsed)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Distributed: %w", err)
	}

	return res, nil
}

// relaxRank is the body of one rank. The root gets the assembled cells and
// the maximum elapsed time; other ranks get nil and 0.
func relaxRank(ctx context.Context, c *comm.Comm, cfg Config, plan []partition.Range) ([]int, int, time.Duration, error) {
	root := c.Rank() == rootRank
	r := plan[c.Rank()]
	nb, err := partition.NeighboursOf(plan, c.Rank())
	if err != nil {
		return nil, 0, 0, err
	}
	if root {
		cfg.enter(VariantDistributed, Initializing)
	}
	b, err := grid.NewBand(r.Rows, cfg.Width)
	if err != nil {
		return nil, 0, 0, err
	}
	if err = b.Seed(r.Start, cfg.seed()); err != nil {
		return nil, 0, 0, fmt.Errorf("rank %d: %w", c.Rank(), err)
	}

	if root {
		cfg.enter(VariantDistributed, Sweeping)
	}
	start := time.Now()
	sweeps := 0
	for changed := true; changed; {
		if ctx.Err() != nil {
			return nil, 0, 0, fmt.Errorf("rank %d sweep %d: %w: %w", c.Rank(), sweeps, comm.ErrAborted, context.Cause(ctx))
		}
		if !r.Idle() {
			if err = comm.ExchangeHalo(ctx, c, b, nb); err != nil {
				return nil, 0, 0, err
			}
		}
		local := b.Sweep(0, b.Rows())
		b.Swap()
		sweeps++
		if changed, err = comm.AllreduceOr(ctx, c, local); err != nil {
			return nil, 0, 0, err
		}
		if root {
			cfg.notify(sweeps, changed)
		}
	}
	elapsed := time.Since(start)

	slowest, err := comm.ReduceMax(ctx, c, rootRank, int(elapsed))
	if err != nil {
		return nil, 0, 0, err
	}
	cells, err := comm.Gatherv(ctx, c, rootRank, b.Interior())
	if err != nil {
		return nil, 0, 0, err
	}

	return cells, sweeps, time.Duration(slowest), nil
}
