// SPDX-License-Identifier: MIT

package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgleje/CRF/boundary"
	"github.com/lgleje/CRF/feature"
)

// states is a Boundaries with bitmask start/end sets.
type states struct {
	n          int
	start, end uint
}

func (s states) NumStates() int          { return s.n }
func (s states) IsStartState(y int) bool { return y >= 0 && y < s.n && s.start&(1<<uint(y)) != 0 }
func (s states) IsEndState(y int) bool   { return y >= 0 && y < s.n && s.end&(1<<uint(y)) != 0 }

// reference restates the three clauses independently of the implementation.
func reference(b states, length, start, end, label, prev int) bool {
	interior := start > 0 && end < length-1
	outside := label >= b.n || prev >= b.n
	atStart := start == 0 && b.IsStartState(label) && (length > 1 || b.IsEndState(label))
	atEnd := end == length-1 && b.IsEndState(label)

	return interior || outside || atStart || atEnd
}

// TestValid_Exhaustive enumerates every window, label pair and start/end
// set for up to 4 states (labels range one past the state space).
func TestValid_Exhaustive(t *testing.T) {
	checked := 0
	for n := 1; n <= 4; n++ {
		for startSet := uint(0); startSet < 1<<uint(n); startSet++ {
			for endSet := uint(0); endSet < 1<<uint(n); endSet++ {
				b := states{n: n, start: startSet, end: endSet}
				for _, length := range []int{1, 2, 5} {
					for ws := 0; ws < length; ws++ {
						for we := ws; we < length; we++ {
							for label := 0; label <= n; label++ {
								for prev := feature.NoLabel; prev <= n; prev++ {
									got := boundary.Valid(b, length, ws, we, label, prev)
									want := reference(b, length, ws, we, label, prev)
									require.Equal(t, want, got,
										"n=%d start=%b end=%b len=%d window=[%d,%d] y=%d yprev=%d",
										n, startSet, endSet, length, ws, we, label, prev)
									checked++
								}
							}
						}
					}
				}
			}
		}
	}
	require.Positive(t, checked)
}

// TestValid_Anchors pins the individual clauses with readable cases.
func TestValid_Anchors(t *testing.T) {
	// state 0 may start, state 1 may end, state 2 neither
	b := states{n: 3, start: 0b001, end: 0b010}

	require.True(t, boundary.Valid(b, 5, 1, 3, 2, 2), "interior window")
	require.True(t, boundary.Valid(b, 5, 0, 0, 3, feature.NoLabel), "label outside state space")
	require.True(t, boundary.Valid(b, 5, 0, 0, 2, 3), "previous label outside state space")
	require.True(t, boundary.Valid(b, 5, 0, 0, 0, feature.NoLabel), "start state at start")
	require.False(t, boundary.Valid(b, 5, 0, 0, 1, feature.NoLabel), "end state at start")
	require.True(t, boundary.Valid(b, 5, 4, 4, 1, 0), "end state at end")
	require.False(t, boundary.Valid(b, 5, 4, 4, 0, 1), "start state at end")
	require.False(t, boundary.Valid(b, 1, 0, 0, 0, feature.NoLabel), "length 1 needs start and end")

	both := states{n: 1, start: 1, end: 1}
	require.True(t, boundary.Valid(both, 1, 0, 0, 0, feature.NoLabel), "length 1, start and end state")
}
