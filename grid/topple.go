// SPDX-License-Identifier: MIT

package grid

// Threshold is the grain count at which a cell topples, sending one grain to
// each of its four neighbours.
const Threshold = 4

// Topple returns the synchronous next value of a cell holding v grains whose
// neighbours hold left, right, up and down grains:
//
//	v mod 4 + ⌊left/4⌋ + ⌊right/4⌋ + ⌊up/4⌋ + ⌊down/4⌋
//
// Inputs are expected to be non-negative. Complexity: O(1).
func Topple(v, left, right, up, down int) int {
	return v%Threshold + left/Threshold + right/Threshold + up/Threshold + down/Threshold
}
