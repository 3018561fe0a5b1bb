// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrDimensionMismatch indicates a buffer whose length is not width×height.
	ErrDimensionMismatch = errors.New("render: cell count does not match dimensions")

	// ErrUnknownFormat indicates an unsupported image format.
	ErrUnknownFormat = errors.New("render: unknown image format")
)
