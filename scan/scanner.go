// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"

	"github.com/lgleje/CRF/boundary"
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/idtable"
)

// Scanner walks kinds as one stream. See the package documentation.
type Scanner struct {
	table  *idtable.Table
	bounds feature.Boundaries
	kinds  []feature.Kind
	filter bool

	// cursor
	seq        feature.Sequence
	start, end int
	k          int                // index of the current kind
	scratch    feature.Descriptor // handed to Kind.Next
	pending    Feature
	primed     bool
	err        error

	stats Stats
}

// New returns a Scanner over kinds in the given order. The slice is copied.
// Boundary filtering is on unless WithoutBoundaryFilter is passed.
func New(table *idtable.Table, bounds feature.Boundaries, kinds []feature.Kind, opts ...Option) *Scanner {
	s := &Scanner{
		table:  table,
		bounds: bounds,
		kinds:  append([]feature.Kind(nil), kinds...),
		filter: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StartAt scans the single-position window [pos, pos].
func (s *Scanner) StartAt(seq feature.Sequence, pos int) error {
	return s.Start(seq, pos, pos)
}

// StartAfter scans the lookback window [prevBoundary+1, end]; prevBoundary
// is the last position of the previous segment, -1 at sequence start.
func (s *Scanner) StartAfter(seq feature.Sequence, prevBoundary, end int) error {
	return s.Start(seq, prevBoundary+1, end)
}

// Start resets the cursor to the inclusive window [start, end] of seq,
// starts every kind on it and primes the first valid element.
//
// Errors:
//   - ErrNilTable, ErrNilBoundaries for a misconfigured Scanner;
//   - ErrBadWindow unless 0 <= start <= end < seq.Len();
//   - any error from a kind's StartScan, wrapped with the kind name.
//
// On error the scan is left exhausted.
func (s *Scanner) Start(seq feature.Sequence, start, end int) error {
	s.seq, s.start, s.end = seq, start, end
	s.k = len(s.kinds)
	s.primed = false
	s.err = nil

	if s.table == nil {
		return ErrNilTable
	}
	if s.filter && s.bounds == nil {
		return ErrNilBoundaries
	}
	if start < 0 || start > end || end >= seq.Len() {
		return fmt.Errorf("%w: [%d,%d] in sequence of length %d", ErrBadWindow, start, end, seq.Len())
	}
	for _, kind := range s.kinds {
		if err := kind.StartScan(seq, start, end); err != nil {
			return fmt.Errorf("scan: kind %s: %w", kind.Name(), err)
		}
	}
	s.k = 0
	s.advance()

	return nil
}

// HasNext reports whether an element is pending.
func (s *Scanner) HasNext() bool { return s.primed }

// Next returns the pending element and advances to the following one.
// The returned value is a copy and may be retained.
//
// Errors:
//   - ErrExhausted when nothing is pending;
//   - the table error that ended the scan, if any (see Err).
func (s *Scanner) Next() (Feature, error) {
	if !s.primed {
		if s.err != nil {
			return Feature{}, s.err
		}
		return Feature{}, ErrExhausted
	}
	out := s.pending
	s.stats.Emitted++
	s.advance()

	return out, nil
}

// Err returns the error that ended the current scan early, or nil.
func (s *Scanner) Err() error { return s.err }

// Stats returns the cumulative counters.
func (s *Scanner) Stats() Stats { return s.stats }

// Drain pulls every remaining element of the current scan.
func (s *Scanner) Drain() ([]Feature, error) {
	var out []Feature
	for s.HasNext() {
		f, err := s.Next()
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}

	return out, s.err
}

// advance primes the next valid element or leaves the scan exhausted.
func (s *Scanner) advance() {
	s.primed = false
	for s.k < len(s.kinds) {
		kind := s.kinds[s.k]
		if !kind.HasNext() {
			s.k++
			continue
		}

		s.scratch.Reset()
		kind.Next(&s.scratch)

		id, err := s.table.LookupOrAssign(s.scratch)
		if err != nil {
			s.err = err
			s.k = len(s.kinds)
			return
		}
		if id == idtable.NotFound {
			s.stats.Unassigned++
			continue
		}
		if s.filter && !boundary.Valid(s.bounds, s.seq.Len(), s.start, s.end, s.scratch.Label, s.scratch.PrevLabel) {
			s.stats.Filtered++
			continue
		}

		s.pending = Feature{Descriptor: s.scratch, ID: id}
		s.primed = true
		return
	}
}
