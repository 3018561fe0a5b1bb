// SPDX-License-Identifier: MIT

package grid

import "fmt"

// bandErrorf wraps an underlying error with Band method context.
func bandErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Band.%s(%d,%d): %w", method, row, col, err)
}

// Band is a worker-owned slice of the sandpile: rows interior rows of width
// cells, framed by one halo row above and below and one sink column on each
// side. cur and next have identical shape; Sweep reads cur and writes next,
// Swap exchanges them.
type Band struct {
	rows, width int
	stride      int   // width + 2
	cur, next   []int // flat storage, length (rows+2)*stride; nil when idle
}

// NewBand allocates a zeroed band of rows×width interior cells.
// rows == 0 is a valid idle band that owns no cells and allocates no storage.
// Returns ErrBadShape if rows < 0 or width < 1.
// Complexity: O(rows×width) time and memory.
func NewBand(rows, width int) (*Band, error) {
	if rows < 0 || width < 1 {
		return nil, fmt.Errorf("NewBand(%d,%d): %w", rows, width, ErrBadShape)
	}
	b := &Band{rows: rows, width: width, stride: width + 2}
	if rows == 0 {
		return b, nil
	}
	n := (rows + 2) * b.stride
	b.cur = make([]int, n)
	b.next = make([]int, n)

	return b, nil
}

// Rows returns the number of owned interior rows.
func (b *Band) Rows() int { return b.rows }

// Width returns the number of interior columns.
func (b *Band) Width() int { return b.width }

// offset maps interior (row, col) to its flat position; row -1 and row rows
// address the halo rows.
func (b *Band) offset(row, col int) int {
	return (row+1)*b.stride + col + 1
}

// indexOf validates interior (row, col) and returns its flat position.
func (b *Band) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.width {
		return 0, bandErrorf(method, row, col, ErrOutOfRange)
	}

	return b.offset(row, col), nil
}

// At returns the current value of interior cell (row, col).
// Returns ErrOutOfRange outside the owned rows and columns.
func (b *Band) At(row, col int) (int, error) {
	idx, err := b.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return b.cur[idx], nil
}

// Set assigns v to interior cell (row, col) of the current buffer.
// Returns ErrOutOfRange outside the owned rows and columns.
func (b *Band) Set(row, col, v int) error {
	idx, err := b.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	b.cur[idx] = v

	return nil
}

// FirstRow returns a copy of the first owned row, or nil for an idle band.
func (b *Band) FirstRow() []int {
	if b.rows == 0 {
		return nil
	}

	return b.copyRow(0)
}

// LastRow returns a copy of the last owned row, or nil for an idle band.
func (b *Band) LastRow() []int {
	if b.rows == 0 {
		return nil
	}

	return b.copyRow(b.rows - 1)
}

func (b *Band) copyRow(row int) []int {
	start := b.offset(row, 0)
	out := make([]int, b.width)
	copy(out, b.cur[start:start+b.width])

	return out
}

// SetHaloTop copies a neighbour's boundary row into the top halo of the
// current buffer. Returns ErrHaloWidth if len(row) != Width(), or
// ErrOutOfRange on an idle band, which has no halos.
func (b *Band) SetHaloTop(row []int) error {
	return b.setHalo("SetHaloTop", -1, row)
}

// SetHaloBottom copies a neighbour's boundary row into the bottom halo of the
// current buffer. Returns ErrHaloWidth if len(row) != Width().
func (b *Band) SetHaloBottom(row []int) error {
	return b.setHalo("SetHaloBottom", b.rows, row)
}

func (b *Band) setHalo(method string, at int, row []int) error {
	if len(row) != b.width {
		return fmt.Errorf("Band.%s: got %d cells, want %d: %w", method, len(row), b.width, ErrHaloWidth)
	}
	if b.rows == 0 {
		return fmt.Errorf("Band.%s: idle band: %w", method, ErrOutOfRange)
	}
	start := b.offset(at, 0)
	copy(b.cur[start:start+b.width], row)

	return nil
}

// Sweep applies Topple to every cell of interior rows [from, to), reading the
// current buffer and writing the next one, and reports whether any cell
// changed. Disjoint row ranges may be swept concurrently.
// Panics if the range lies outside [0, Rows()] (programmer error).
// Complexity: O((to-from)×width).
func (b *Band) Sweep(from, to int) bool {
	if from < 0 || to > b.rows || from > to {
		panic(fmt.Sprintf("grid: Sweep range [%d,%d) outside [0,%d)", from, to, b.rows))
	}
	s := b.stride
	cur, next := b.cur, b.next
	changed := false
	for row := from; row < to; row++ {
		i := b.offset(row, 0)
		for end := i + b.width; i < end; i++ {
			v := Topple(cur[i], cur[i-1], cur[i+1], cur[i-s], cur[i+s])
			next[i] = v
			if v != cur[i] {
				changed = true
			}
		}
	}

	return changed
}

// Swap makes the next buffer current. Call once per sweep, after every
// goroutine sweeping this band has finished.
func (b *Band) Swap() {
	b.cur, b.next = b.next, b.cur
}

// Interior returns a row-major copy of the owned cells of the current buffer.
// The result has length Rows()×Width() and shares no storage with the band.
func (b *Band) Interior() []int {
	out := make([]int, 0, b.rows*b.width)
	for row := 0; row < b.rows; row++ {
		start := b.offset(row, 0)
		out = append(out, b.cur[start:start+b.width]...)
	}

	return out
}

// Seed writes s into every owned cell of the current buffer. start is the
// global interior row of the band's first row, so that bands of one grid
// seeded with the same Seed reproduce a single-band seeding.
// Returns ErrNegativeGrains at the first cell s sets below zero; the band is
// then only partly seeded and must not be swept.
func (b *Band) Seed(start int, s Seed) error {
	for row := 0; row < b.rows; row++ {
		i := b.offset(row, 0)
		for col := 0; col < b.width; col++ {
			v := s(start+row, col)
			if v < 0 {
				return fmt.Errorf("Band.Seed: cell (%d,%d)=%d: %w", start+row, col, v, ErrNegativeGrains)
			}
			b.cur[i+col] = v
		}
	}

	return nil
}
