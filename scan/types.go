// SPDX-License-Identifier: MIT

package scan

import (
	"errors"

	"github.com/lgleje/CRF/feature"
)

// Sentinel errors.
var (
	// ErrExhausted is returned by Next when no element is pending.
	ErrExhausted = errors.New("scan: no pending feature")

	// ErrNilTable indicates a Scanner constructed without an id table.
	ErrNilTable = errors.New("scan: nil id table")

	// ErrNilBoundaries indicates boundary filtering without a state description.
	ErrNilBoundaries = errors.New("scan: nil boundaries with filtering enabled")

	// ErrBadWindow indicates a window outside the sequence or with start > end.
	ErrBadWindow = errors.New("scan: window out of range")
)

// Feature is one emitted occurrence: a descriptor and its table id.
type Feature struct {
	Descriptor feature.Descriptor
	ID         int
}

// Stats accumulates over the lifetime of a Scanner.
//
//   - Emitted: elements returned by Next.
//   - Unassigned: candidates dropped because the frozen table lacks them.
//   - Filtered: candidates dropped by the boundary rule.
type Stats struct {
	Emitted    uint64
	Unassigned uint64
	Filtered   uint64
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithoutBoundaryFilter disables the boundary rule (step 5 of the advance
// loop); every id-resolved candidate is emitted.
func WithoutBoundaryFilter() Option {
	return func(s *Scanner) { s.filter = false }
}
