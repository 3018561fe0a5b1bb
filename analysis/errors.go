package analysis

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("analysis: grid must have at least one row and one column")
	// ErrDimensionMismatch indicates a buffer whose length is not width×height.
	ErrDimensionMismatch = errors.New("analysis: cell count does not match dimensions")
)
