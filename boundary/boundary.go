// SPDX-License-Identifier: MIT

package boundary

import "github.com/lgleje/CRF/feature"

// Valid reports whether a feature with label and prev is legal on the
// inclusive window [start, end] of a sequence of the given length.
//
// Complexity: O(1); pure.
func Valid(b feature.Boundaries, length, start, end, label, prev int) bool {
	n := b.NumStates()
	if (start > 0 && end < length-1) || label >= n || prev >= n {
		return true
	}
	if start == 0 && b.IsStartState(label) && (length > 1 || b.IsEndState(label)) {
		return true
	}

	return end == length-1 && b.IsEndState(label)
}
