// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Reserved tags used by the collective operations. User tags should be >= 0.
const (
	tagHaloDown = -1 - iota // last row travelling to the successor
	tagHaloUp               // first row travelling to the predecessor
	tagReduce               // local flag travelling to the root
	tagBcast                // global flag travelling from the root
	tagMax                  // value travelling to the root for ReduceMax
	tagCount                // announced payload size for Gatherv
	tagGather               // payload for Gatherv
)

// link identifies one directed, tagged channel between two ranks.
type link struct {
	src, dst, tag int
}

// world is the shared switchboard of one group. It owns the link channels and
// nothing else; rank state stays with each rank's goroutine.
type world struct {
	size  int
	mu    sync.Mutex
	links map[link]chan []int
}

// channel returns the channel for l, creating it on first use.
func (w *world) channel(l link) chan []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	ch, ok := w.links[l]
	if !ok {
		ch = make(chan []int, 1)
		w.links[l] = ch
	}

	return ch
}

// Comm is one rank's endpoint into its group.
type Comm struct {
	rank  int
	world *world
}

// Rank returns this endpoint's rank in [0, Size()).
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of ranks in the group.
func (c *Comm) Size() int { return c.world.size }

// Run starts size ranks, each executing fn with its own Comm, and waits for
// all of them. The first non-nil error cancels the context handed to every
// rank, which unblocks all pending communication, and is returned.
// Cancelling ctx aborts the group the same way.
// Returns ErrBadSize if size < 1.
func Run(ctx context.Context, size int, fn func(ctx context.Context, c *Comm) error) error {
	if size < 1 {
		return fmt.Errorf("Run(%d): %w", size, ErrBadSize)
	}
	w := &world{size: size, links: make(map[link]chan []int)}
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < size; rank++ {
		c := &Comm{rank: rank, world: w}
		g.Go(func() error {
			return fn(gctx, c)
		})
	}

	return g.Wait()
}

// checkPeer validates a peer rank for method.
func (c *Comm) checkPeer(method string, peer int) error {
	if peer < 0 || peer >= c.world.size {
		return fmt.Errorf("Comm.%s: rank %d -> %d of %d: %w", method, c.rank, peer, c.world.size, ErrBadRank)
	}

	return nil
}

// aborted builds the error returned when ctx ends during method.
func (c *Comm) aborted(ctx context.Context, method string, peer int) error {
	return fmt.Errorf("Comm.%s: rank %d <-> %d: %w: %w", method, c.rank, peer, ErrAborted, context.Cause(ctx))
}

// Send delivers a copy of data to rank dst under tag. It returns once the
// message is queued; it blocks only while the previous message on the same
// link is still unread, and fails with ErrAborted if ctx ends first.
func (c *Comm) Send(ctx context.Context, dst, tag int, data []int) error {
	if err := c.checkPeer("Send", dst); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return c.aborted(ctx, "Send", dst)
	}
	msg := make([]int, len(data))
	copy(msg, data)
	select {
	case c.world.channel(link{src: c.rank, dst: dst, tag: tag}) <- msg:
		return nil
	case <-ctx.Done():
		return c.aborted(ctx, "Send", dst)
	}
}

// Recv waits for the next message from rank src under tag.
// Fails with ErrAborted if ctx ends first.
func (c *Comm) Recv(ctx context.Context, src, tag int) ([]int, error) {
	if err := c.checkPeer("Recv", src); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, c.aborted(ctx, "Recv", src)
	}
	select {
	case msg := <-c.world.channel(link{src: src, dst: c.rank, tag: tag}):
		return msg, nil
	case <-ctx.Done():
		return nil, c.aborted(ctx, "Recv", src)
	}
}
