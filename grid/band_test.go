// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sandpile/grid"
)

//----------------------------------------------------------------------------//
// Topple
//----------------------------------------------------------------------------//

// TestTopple checks the update rule against hand-computed values.
func TestTopple(t *testing.T) {
	cases := []struct {
		name                   string
		v, l, r, u, d, expect int
	}{
		{"AllZero", 0, 0, 0, 0, 0, 0},
		{"StableKeepsValue", 3, 0, 0, 0, 0, 3},
		{"ToppleToZero", 4, 0, 0, 0, 0, 0},
		{"ReceiveFromEach", 0, 4, 4, 4, 4, 4},
		{"TruncatingDivision", 7, 7, 3, 11, 8, 3 + 1 + 0 + 2 + 2},
		{"NeighboursBelowThreshold", 2, 3, 3, 3, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, grid.Topple(tc.v, tc.l, tc.r, tc.u, tc.d))
		})
	}
}

//----------------------------------------------------------------------------//
// NewBand and accessors
//----------------------------------------------------------------------------//

// TestNewBandShape rejects invalid shapes and accepts idle bands.
func TestNewBandShape(t *testing.T) {
	_, err := grid.NewBand(-1, 3)
	require.ErrorIs(t, err, grid.ErrBadShape)

	_, err = grid.NewBand(2, 0)
	require.ErrorIs(t, err, grid.ErrBadShape)

	idle, err := grid.NewBand(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, idle.Rows())
	require.Empty(t, idle.Interior())
	require.Nil(t, idle.FirstRow())
	require.Nil(t, idle.LastRow())
	require.False(t, idle.Sweep(0, 0))
	require.Zero(t, grid.Storage(idle))
	require.NoError(t, idle.Seed(0, grid.Uniform(grid.DefaultGrains)))
	require.ErrorIs(t, idle.SetHaloTop([]int{1, 2, 3}), grid.ErrOutOfRange)
	require.ErrorIs(t, idle.SetHaloBottom([]int{1, 2, 3}), grid.ErrOutOfRange)

	b, err := grid.NewBand(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Width())
	require.Equal(t, 5, grid.Stride(b))
	require.Equal(t, 2*4*5, grid.Storage(b))
}

// TestAtSetBounds verifies the interior accessor hides halo and sink cells.
func TestAtSetBounds(t *testing.T) {
	b, err := grid.NewBand(2, 3)
	require.NoError(t, err)

	require.NoError(t, b.Set(1, 2, 9))
	v, err := b.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9, v)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = b.At(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		assert.ErrorIs(t, b.Set(rc[0], rc[1], 1), grid.ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
	}
}

// TestBoundaryRowsAreCopies ensures FirstRow/LastRow never alias the band.
func TestBoundaryRowsAreCopies(t *testing.T) {
	b, err := grid.NewBand(3, 2)
	require.NoError(t, err)
	require.NoError(t, b.Seed(0, func(row, col int) int { return row*10 + col }))

	first, last := b.FirstRow(), b.LastRow()
	require.Equal(t, []int{0, 1}, first)
	require.Equal(t, []int{20, 21}, last)

	first[0] = 99
	v, _ := b.At(0, 0)
	require.Equal(t, 0, v)
}

// TestHalo checks halo width validation and that halos feed the rule.
func TestHalo(t *testing.T) {
	b, err := grid.NewBand(1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, b.SetHaloTop([]int{1}), grid.ErrHaloWidth)
	require.ErrorIs(t, b.SetHaloBottom([]int{1, 2, 3}), grid.ErrHaloWidth)

	require.NoError(t, b.SetHaloTop([]int{4, 8}))
	require.NoError(t, b.SetHaloBottom([]int{0, 4}))
	top, bottom := grid.Halos(b)
	require.Equal(t, []int{4, 8}, top)
	require.Equal(t, []int{0, 4}, bottom)

	require.True(t, b.Sweep(0, 1))
	b.Swap()
	require.Equal(t, []int{1, 3}, b.Interior())
}

// TestSweepPanicsOnBadRange guards the programmer-error path.
func TestSweepPanicsOnBadRange(t *testing.T) {
	b, err := grid.NewBand(2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { b.Sweep(-1, 1) })
	require.Panics(t, func() { b.Sweep(0, 3) })
	require.Panics(t, func() { b.Sweep(2, 1) })
}

//----------------------------------------------------------------------------//
// Relaxation on a single band
//----------------------------------------------------------------------------//

// relaxBand sweeps b until nothing changes and returns the sweep count.
func relaxBand(t *testing.T, b *grid.Band) int {
	t.Helper()
	sweeps := 0
	for changed := true; changed; {
		changed = b.Sweep(0, b.Rows())
		b.Swap()
		sweeps++
		for _, v := range grid.Border(b) {
			require.Zero(t, v, "sink cell changed at sweep %d", sweeps)
		}
		top, bottom := grid.Halos(b)
		require.Equal(t, make([]int, b.Width()), top)
		require.Equal(t, make([]int, b.Width()), bottom)
		require.Less(t, sweeps, 10_000, "band did not stabilise")
	}
	return sweeps
}

// TestSingleCell reproduces the 1×1 scenario: 4 → 0 in exactly two sweeps.
func TestSingleCell(t *testing.T) {
	b, err := grid.NewBand(1, 1)
	require.NoError(t, err)
	require.NoError(t, b.Seed(0, grid.Uniform(grid.DefaultGrains)))

	require.Equal(t, 2, relaxBand(t, b))
	require.Equal(t, []int{0}, b.Interior())
}

// TestTwoCellColumn reproduces the 2×1 scenario: [4,4] → [1,1] in two sweeps.
func TestTwoCellColumn(t *testing.T) {
	b, err := grid.NewBand(2, 1)
	require.NoError(t, err)
	require.NoError(t, b.Seed(0, grid.Uniform(grid.DefaultGrains)))

	require.Equal(t, 2, relaxBand(t, b))
	require.Equal(t, []int{1, 1}, b.Interior())
}

// TestThreeByThree follows a 3×3 pile of fours through five sweeps.
func TestThreeByThree(t *testing.T) {
	b, err := grid.NewBand(3, 3)
	require.NoError(t, err)
	require.NoError(t, b.Seed(0, grid.Uniform(grid.DefaultGrains)))

	trace := [][]int{
		{2, 3, 2, 3, 4, 3, 2, 3, 2},
		{2, 4, 2, 4, 0, 4, 2, 4, 2},
		{4, 0, 4, 0, 4, 0, 4, 0, 4},
		{0, 3, 0, 3, 0, 3, 0, 3, 0},
	}
	for i, want := range trace {
		require.True(t, b.Sweep(0, 3), "sweep %d", i+1)
		b.Swap()
		require.Equal(t, want, b.Interior(), "after sweep %d", i+1)
	}
	require.False(t, b.Sweep(0, 3))
}

// TestSplitSweepMatchesWhole sweeps row ranges separately and compares with a
// single full sweep.
func TestSplitSweepMatchesWhole(t *testing.T) {
	whole, _ := grid.NewBand(5, 4)
	split, _ := grid.NewBand(5, 4)
	seed := func(row, col int) int { return (row*7 + col*3) % 9 }
	require.NoError(t, whole.Seed(0, seed))
	require.NoError(t, split.Seed(0, seed))

	for i := 0; i < 4; i++ {
		a := whole.Sweep(0, 5)
		b := split.Sweep(0, 2)
		c := split.Sweep(2, 5)
		require.Equal(t, a, b || c)
		whole.Swap()
		split.Swap()
		require.Equal(t, whole.Interior(), split.Interior())
	}
}

// TestSeedRejectsNegative stops at the first cell below zero, whichever seed
// produced it.
func TestSeedRejectsNegative(t *testing.T) {
	cases := []struct {
		name string
		seed grid.Seed
	}{
		{"Uniform", grid.Uniform(-3)},
		{"CenterPile", grid.CenterPile(3, 3, -1)},
		{"SingleCell", func(row, col int) int {
			if row == 2 && col == 1 {
				return -1
			}
			return 4
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := grid.NewBand(2, 3)
			require.NoError(t, err)
			require.ErrorIs(t, b.Seed(1, tc.seed), grid.ErrNegativeGrains)
		})
	}

	b, err := grid.NewBand(2, 3)
	require.NoError(t, err)
	require.NoError(t, b.Seed(0, grid.Uniform(0)))
}
