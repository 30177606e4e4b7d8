// SPDX-License-Identifier: MIT

package idtable

import (
	"errors"

	"github.com/lgleje/CRF/feature"
)

// NotFound is the id reported for a descriptor absent from a frozen table.
const NotFound = -1

// Sentinel errors.
var (
	// ErrFormat indicates malformed persisted table data.
	ErrFormat = errors.New("idtable: malformed table data")

	// ErrInconsistentState indicates a call on a table that is neither open nor frozen.
	ErrInconsistentState = errors.New("idtable: table is neither open nor frozen")

	// ErrNotFrozen indicates a reverse lookup before Freeze.
	ErrNotFrozen = errors.New("idtable: table is not frozen")

	// ErrUnknownID indicates a reverse lookup for an id outside [0, Size()).
	ErrUnknownID = errors.New("idtable: unknown feature id")
)

// tableState is the tagged phase of a Table.
type tableState interface {
	size() int
	lookup(d feature.Descriptor) (int, bool)
}

// openState accepts new descriptors.
type openState struct {
	ids map[feature.Descriptor]int
}

func (s *openState) size() int { return len(s.ids) }

func (s *openState) lookup(d feature.Descriptor) (int, bool) {
	id, ok := s.ids[d]
	return id, ok
}

// assign returns the id of d, interning it first if needed.
func (s *openState) assign(d feature.Descriptor) int {
	if id, ok := s.ids[d]; ok {
		return id
	}
	id := len(s.ids)
	s.ids[d] = id

	return id
}

// frozenState is immutable after construction.
type frozenState struct {
	ids   map[feature.Descriptor]int
	names []feature.Descriptor // id → descriptor
}

func (s *frozenState) size() int { return len(s.names) }

func (s *frozenState) lookup(d feature.Descriptor) (int, bool) {
	id, ok := s.ids[d]
	return id, ok
}

// Table maps descriptors to dense ids. See the package documentation for the
// phase rules.
type Table struct {
	state tableState
}

// New returns an empty open table.
func New() *Table {
	return &Table{state: &openState{ids: make(map[feature.Descriptor]int)}}
}
