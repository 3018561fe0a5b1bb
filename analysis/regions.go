package analysis

import "fmt"

// Regions finds all contiguous regions of equal-valued cells in a row-major
// width×height grid, according to conn. Every cell belongs to exactly one
// region. Regions are ordered by their smallest cell index.
//
// To convert an index back to (x,y), use x = idx%width, y = idx/width.
//
// Returns ErrEmptyGrid if width or height is below 1, ErrDimensionMismatch if
// len(cells) != width*height.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Regions(cells []int, width, height int, conn Connectivity) ([]Region, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Regions(%dx%d): %w", width, height, ErrEmptyGrid)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("Regions(%dx%d): got %d cells: %w", width, height, len(cells), ErrDimensionMismatch)
	}
	seen := make([]bool, len(cells))
	offsets := conn.offsets()
	var regions []Region

	for i0, value := range cells {
		if seen[i0] {
			continue
		}
		// BFS over equal neighbours
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%width, u/width
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if vx < 0 || vx >= width || vy < 0 || vy >= height {
					continue
				}
				vi := vy*width + vx
				if !seen[vi] && cells[vi] == value {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, Region{Value: value, Cells: queue})
	}

	return regions, nil
}

// Largest returns the region with the most cells, preferring the earliest on
// ties, and false when regions is empty.
func Largest(regions []Region) (Region, bool) {
	if len(regions) == 0 {
		return Region{}, false
	}
	best := regions[0]
	for _, r := range regions[1:] {
		if len(r.Cells) > len(best.Cells) {
			best = r
		}
	}

	return best, true
}
