// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"
	"strings"
)

// Variant selects how the sweep work is spread.
type Variant int

const (
	// VariantSerial runs one band on the calling goroutine.
	VariantSerial Variant = iota
	// VariantShared splits each sweep of one band across goroutines.
	VariantShared
	// VariantDistributed gives each rank its own band and talks via comm.
	VariantDistributed
)

var variantNames = [...]string{
	VariantSerial:      "serial",
	VariantShared:      "shared",
	VariantDistributed: "distributed",
}

// String returns the lower-case variant name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant maps a name (case-insensitive) to its Variant.
// Returns ErrUnknownVariant otherwise.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if strings.EqualFold(name, n) {
			return Variant(v), nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", name, ErrUnknownVariant)
}

// State is the engine lifecycle stage.
type State int

const (
	Initializing State = iota
	Sweeping
	Stable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Sweeping:
		return "sweeping"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
