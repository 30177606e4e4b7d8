// SPDX-License-Identifier: MIT

// Package boundary decides whether a feature occurrence is legal at a given
// window of a sequence.
//
// Rule (any clause suffices):
//
//  1. the window is strictly interior (start > 0 and end < length-1), or the
//     label or previous label lies at or beyond NumStates (such features are
//     not constrained here);
//  2. the window touches the start (start == 0), the label is a start state,
//     and either the sequence has more than one position or the label is
//     also an end state;
//  3. the window touches the end (end == length-1) and the label is an end
//     state.
//
// A length-1 sequence therefore requires its only label to be both a start
// and an end state.
package boundary
