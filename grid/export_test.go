package grid

// Stride returns the length of one stored row, sink columns included.
func Stride(b *Band) int { return b.stride }

// Storage returns the number of cells allocated across both buffers.
func Storage(b *Band) int { return len(b.cur) + len(b.next) }

// Border returns the sink columns of both buffers, halo rows included.
func Border(b *Band) []int {
	if b.rows == 0 {
		return nil
	}
	out := make([]int, 0, 4*(b.rows+2))
	for _, buf := range [][]int{b.cur, b.next} {
		for row := -1; row <= b.rows; row++ {
			left := b.offset(row, -1)
			out = append(out, buf[left], buf[left+b.width+1])
		}
	}
	return out
}

// Halos returns copies of the current buffer's halo rows.
func Halos(b *Band) (top, bottom []int) {
	if b.rows == 0 {
		return nil, nil
	}
	top = make([]int, b.width)
	bottom = make([]int, b.width)
	t := b.offset(-1, 0)
	copy(top, b.cur[t:t+b.width])
	d := b.offset(b.rows, 0)
	copy(bottom, b.cur[d:d+b.width])
	return top, bottom
}
