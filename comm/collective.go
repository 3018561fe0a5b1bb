// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sandpile/partition"
)

// reduceRoot gathers flags for AllreduceOr before broadcasting the result.
const reduceRoot = 0

// HaloBuffer is the part of a worker's band the halo exchange touches.
// *grid.Band satisfies it.
type HaloBuffer interface {
	FirstRow() []int
	LastRow() []int
	SetHaloTop(row []int) error
	SetHaloBottom(row []int) error
}

// ExchangeHalo swaps boundary rows with the active neighbours in nb:
// the first owned row goes to nb.Prev and nb.Prev's last row lands in the top
// halo; the last owned row goes to nb.Next and nb.Next's first row lands in
// the bottom halo. Missing neighbours leave the static zero halo untouched.
// All transfers run concurrently and ExchangeHalo returns only after every one
// of them has completed, or with the first failure.
func ExchangeHalo(ctx context.Context, c *Comm, buf HaloBuffer, nb partition.Neighbours) error {
	g, gctx := errgroup.WithContext(ctx)
	if nb.HasPrev {
		first := buf.FirstRow()
		g.Go(func() error {
			return c.Send(gctx, nb.Prev, tagHaloUp, first)
		})
		g.Go(func() error {
			row, err := c.Recv(gctx, nb.Prev, tagHaloDown)
			if err != nil {
				return err
			}
			return buf.SetHaloTop(row)
		})
	}
	if nb.HasNext {
		last := buf.LastRow()
		g.Go(func() error {
			return c.Send(gctx, nb.Next, tagHaloDown, last)
		})
		g.Go(func() error {
			row, err := c.Recv(gctx, nb.Next, tagHaloUp)
			if err != nil {
				return err
			}
			return buf.SetHaloBottom(row)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("ExchangeHalo: rank %d: %w", c.rank, err)
	}

	return nil
}

// AllreduceOr combines every rank's local flag with logical OR and returns
// the result on every rank. No rank returns before all ranks have
// contributed, which keeps the group in lock-step.
func AllreduceOr(ctx context.Context, c *Comm, local bool) (bool, error) {
	if c.rank != reduceRoot {
		if err := c.Send(ctx, reduceRoot, tagReduce, []int{boolToInt(local)}); err != nil {
			return false, err
		}
		v, err := c.recvScalar(ctx, "AllreduceOr", reduceRoot, tagBcast)
		if err != nil {
			return false, err
		}
		return v != 0, nil
	}

	global := local
	for r := 0; r < c.Size(); r++ {
		if r == reduceRoot {
			continue
		}
		v, err := c.recvScalar(ctx, "AllreduceOr", r, tagReduce)
		if err != nil {
			return false, err
		}
		global = global || v != 0
	}
	for r := 0; r < c.Size(); r++ {
		if r == reduceRoot {
			continue
		}
		if err := c.Send(ctx, r, tagBcast, []int{boolToInt(global)}); err != nil {
			return false, err
		}
	}

	return global, nil
}

// ReduceMax returns the maximum of every rank's v on root; other ranks
// receive 0.
func ReduceMax(ctx context.Context, c *Comm, root, v int) (int, error) {
	if err := c.checkPeer("ReduceMax", root); err != nil {
		return 0, err
	}
	if c.rank != root {
		return 0, c.Send(ctx, root, tagMax, []int{v})
	}
	best := v
	for r := 0; r < c.Size(); r++ {
		if r == root {
			continue
		}
		got, err := c.recvScalar(ctx, "ReduceMax", r, tagMax)
		if err != nil {
			return 0, err
		}
		best = max(best, got)
	}

	return best, nil
}

// Gatherv collects every rank's local slice onto root, in rank order. Each
// rank first announces its length; root derives offsets by prefix sum and
// copies each payload into place. Ranks may contribute empty slices.
// Root receives the assembled buffer; other ranks receive nil.
func Gatherv(ctx context.Context, c *Comm, root int, local []int) ([]int, error) {
	if err := c.checkPeer("Gatherv", root); err != nil {
		return nil, err
	}
	if c.rank != root {
		if err := c.Send(ctx, root, tagCount, []int{len(local)}); err != nil {
			return nil, err
		}
		return nil, c.Send(ctx, root, tagGather, local)
	}

	counts := make([]int, c.Size())
	for r := range counts {
		if r == root {
			counts[r] = len(local)
			continue
		}
		n, err := c.recvScalar(ctx, "Gatherv", r, tagCount)
		if err != nil {
			return nil, err
		}
		counts[r] = n
	}
	offsets := partition.Offsets(counts)
	out := make([]int, offsets[len(offsets)-1]+counts[len(counts)-1])
	for r := range counts {
		part := local
		if r != root {
			var err error
			if part, err = c.Recv(ctx, r, tagGather); err != nil {
				return nil, err
			}
		}
		if len(part) != counts[r] {
			return nil, fmt.Errorf("Gatherv: rank %d sent %d cells, announced %d: %w", r, len(part), counts[r], ErrShortMessage)
		}
		copy(out[offsets[r]:], part)
	}

	return out, nil
}

// recvScalar receives a one-element message.
func (c *Comm) recvScalar(ctx context.Context, method string, src, tag int) (int, error) {
	msg, err := c.Recv(ctx, src, tag)
	if err != nil {
		return 0, err
	}
	if len(msg) != 1 {
		return 0, fmt.Errorf("%s: rank %d sent %d values, want 1: %w", method, src, len(msg), ErrShortMessage)
	}

	return msg[0], nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
