// SPDX-License-Identifier: MIT

package feature

// Kind generates candidate descriptors of one category for a scan window.
//
// Contract:
//   - StartScan positions the kind's own iterator on the inclusive window
//     [start, end] of seq. A kind may produce zero, one or many descriptors.
//     start == end is a single-position window; start < end spans a segment.
//     start > 0 means the window has a predecessor position.
//   - HasNext reports whether Next will produce another descriptor.
//   - Next fills out (already Reset by the caller) and advances.
//     The kind must not keep out after returning.
//   - RequiresTraining reports whether Train must see the training data
//     before identifiers are collected.
//   - Train observes one position of one training sequence.
//
// Kinds are iterators and hold per-scan state; one instance serves one scan
// at a time.
type Kind interface {
	Name() string
	StartScan(seq Sequence, start, end int) error
	HasNext() bool
	Next(out *Descriptor)
	RequiresTraining() bool
	Train(seq Sequence, pos int) error
}

// Forker is implemented by kinds that can hand out an independent iterator
// sharing their read-only trained state. Concurrent scans need one forked
// instance per goroutine.
type Forker interface {
	Fork() Kind
}

// Sequence is one observation sequence with its (possibly remapped) labels.
type Sequence interface {
	Len() int
	Token(pos int) string
	Label(pos int) int
	SetLabel(pos, label int)
}

// SegmentSequence is a Sequence whose labels come in contiguous segments.
// SegmentEnd returns the last position of the segment starting at start.
type SegmentSequence interface {
	Sequence
	SegmentEnd(start int) int
}

// Boundaries classifies states for the boundary validity rule.
type Boundaries interface {
	NumStates() int
	IsStartState(state int) bool
	IsEndState(state int) bool
}

// Model is the statistical model collaborator. Only its state-space
// description and its label/state remapping hooks are used here.
//
// MapStates rewrites the labels of a training sequence into model states;
// it is invoked once per training sequence when NumStates != NumLabels.
// MapSegmentStates does the same for segment-style data. MapSegmentLabels
// is the inverse for segment-style data after decoding.
type Model interface {
	Boundaries
	NumLabels() int
	LabelOf(state int) int
	MapStates(seq Sequence) error
	MapSegmentStates(seq SegmentSequence) error
	MapSegmentLabels(seq SegmentSequence) error
}

// DataIter walks a collection of training sequences. It supports any number
// of full passes; Reset rewinds to the first sequence.
//
//	for it.Reset(); it.Next(); {
//		seq := it.Sequence()
//	}
//	if err := it.Err(); err != nil { ... }
type DataIter interface {
	Reset()
	Next() bool
	Sequence() Sequence
	Err() error
}
