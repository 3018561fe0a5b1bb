// SPDX-License-Identifier: MIT

package relax

import "errors"

var (
	// ErrBadDimensions indicates a grid with height or width below 1, or a
	// buffer whose length disagrees with its dimensions.
	ErrBadDimensions = errors.New("relax: grid dimensions must be > 0 and match the buffer")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("relax: workers must be > 0")

	// ErrUnknownVariant indicates an unrecognised variant name.
	ErrUnknownVariant = errors.New("relax: unknown variant")
)
