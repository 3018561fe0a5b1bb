// SPDX-License-Identifier: MIT

package comm

import "errors"

var (
	// ErrBadSize indicates a group with fewer than one rank.
	ErrBadSize = errors.New("comm: group size must be > 0")

	// ErrBadRank indicates a peer or root rank outside [0, size).
	ErrBadRank = errors.New("comm: rank out of range")

	// ErrAborted is returned by any blocked operation once the group context is
	// cancelled. The cancellation cause is wrapped alongside it.
	ErrAborted = errors.New("comm: group aborted")

	// ErrShortMessage indicates a payload whose length differs from the size
	// its sender announced.
	ErrShortMessage = errors.New("comm: message length mismatch")
)
