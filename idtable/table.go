// SPDX-License-Identifier: MIT

package idtable

import (
	"fmt"

	"github.com/lgleje/CRF/feature"
)

// LookupOrAssign resolves d to its id.
//
// Open phase: returns the existing id or assigns the next sequential one.
// Frozen phase: returns the existing id or NotFound; never mutates.
//
// Errors:
//   - ErrInconsistentState for a zero-value table.
//
// Complexity: O(1) amortized.
func (t *Table) LookupOrAssign(d feature.Descriptor) (int, error) {
	switch s := t.state.(type) {
	case *openState:
		return s.assign(d), nil
	case *frozenState:
		if id, ok := s.lookup(d); ok {
			return id, nil
		}
		return NotFound, nil
	default:
		return NotFound, ErrInconsistentState
	}
}

// Lookup returns the id of d without assigning, in either phase.
func (t *Table) Lookup(d feature.Descriptor) (int, bool) {
	if t.state == nil {
		return NotFound, false
	}

	return t.state.lookup(d)
}

// Freeze moves an open table to the frozen phase and builds the reverse
// mapping. Freezing a frozen table is a no-op.
func (t *Table) Freeze() error {
	switch s := t.state.(type) {
	case *frozenState:
		return nil
	case *openState:
		names := make([]feature.Descriptor, len(s.ids))
		for d, id := range s.ids {
			names[id] = d
		}
		t.state = &frozenState{ids: s.ids, names: names}
		return nil
	default:
		return ErrInconsistentState
	}
}

// Frozen reports whether the table is in the frozen phase.
func (t *Table) Frozen() bool {
	_, ok := t.state.(*frozenState)
	return ok
}

// Size returns the number of assigned ids (0 for a zero-value table).
func (t *Table) Size() int {
	if t.state == nil {
		return 0
	}

	return t.state.size()
}

// Descriptor returns the descriptor registered under id.
func (t *Table) Descriptor(id int) (feature.Descriptor, error) {
	s, ok := t.state.(*frozenState)
	if !ok {
		if t.state == nil {
			return feature.Descriptor{}, ErrInconsistentState
		}
		return feature.Descriptor{}, ErrNotFrozen
	}
	if id < 0 || id >= len(s.names) {
		return feature.Descriptor{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return s.names[id], nil
}

// Name returns the text form of the descriptor registered under id.
func (t *Table) Name(id int) (string, error) {
	d, err := t.Descriptor(id)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}
