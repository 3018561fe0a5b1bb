// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadShape is returned when a band is requested with rows < 0 or width < 1.
	ErrBadShape = errors.New("grid: invalid band shape")

	// ErrOutOfRange indicates an interior row or column outside the band.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrHaloWidth indicates a halo row whose length differs from the band width.
	ErrHaloWidth = errors.New("grid: halo row width mismatch")

	// ErrNonRectangular indicates seed rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrNegativeGrains indicates a seed value below zero.
	ErrNegativeGrains = errors.New("grid: grain count must be non-negative")
)
