// SPDX-License-Identifier: MIT

package featgen_test

import (
	"errors"

	"github.com/lgleje/CRF/feature"
)

// listKind replays a fixed descriptor list on every window and records the
// windows it was started on.
type listKind struct {
	name    string
	items   []feature.Descriptor
	pos     int
	windows [][2]int
}

func (k *listKind) Name() string { return k.name }

func (k *listKind) StartScan(_ feature.Sequence, start, end int) error {
	k.windows = append(k.windows, [2]int{start, end})
	k.pos = 0
	return nil
}

func (k *listKind) HasNext() bool { return k.pos < len(k.items) }

func (k *listKind) Next(out *feature.Descriptor) {
	*out = k.items[k.pos]
	k.pos++
}

func (k *listKind) RequiresTraining() bool                { return false }
func (k *listKind) Train(_ feature.Sequence, _ int) error { return nil }

// forkableList is a listKind that can be forked.
type forkableList struct{ listKind }

func (k *forkableList) Fork() feature.Kind {
	return &forkableList{listKind{name: k.name, items: k.items}}
}

// tokenKind emits the token at the window end under its gold label, and
// records training calls when trainable is set.
type tokenKind struct {
	trainable bool
	trained   [][2]int // (sequence length, position)
	trainErr  error
	buf       []feature.Descriptor
	pos       int
}

func (k *tokenKind) Name() string           { return "tok" }
func (k *tokenKind) RequiresTraining() bool { return k.trainable }

func (k *tokenKind) Train(seq feature.Sequence, pos int) error {
	k.trained = append(k.trained, [2]int{seq.Len(), pos})
	return k.trainErr
}

func (k *tokenKind) StartScan(seq feature.Sequence, _, end int) error {
	k.buf = k.buf[:0]
	k.pos = 0
	k.buf = append(k.buf, feature.Descriptor{Kind: "tok", Payload: seq.Token(end), Label: seq.Label(end), PrevLabel: feature.NoLabel})
	return nil
}

func (k *tokenKind) HasNext() bool { return k.pos < len(k.buf) }

func (k *tokenKind) Next(out *feature.Descriptor) {
	*out = k.buf[k.pos]
	k.pos++
}

func (k *tokenKind) Fork() feature.Kind { return &tokenKind{trainable: k.trainable} }

// pairModel has two states per label: state = 2*label (+1 inside a segment).
type pairModel struct {
	labels   int
	mapped   int
	segments int
	mapErr   error
}

func (m *pairModel) NumStates() int        { return 2 * m.labels }
func (m *pairModel) NumLabels() int        { return m.labels }
func (m *pairModel) IsStartState(int) bool { return true }
func (m *pairModel) IsEndState(int) bool   { return true }
func (m *pairModel) LabelOf(state int) int { return state / 2 }

func (m *pairModel) MapStates(seq feature.Sequence) error {
	m.mapped++
	for pos := 0; pos < seq.Len(); pos++ {
		seq.SetLabel(pos, 2*seq.Label(pos))
	}
	return m.mapErr
}

func (m *pairModel) MapSegmentStates(seq feature.SegmentSequence) error {
	m.segments++
	for start := 0; start < seq.Len(); start = seq.SegmentEnd(start) + 1 {
		end := seq.SegmentEnd(start)
		for pos := start; pos <= end; pos++ {
			state := 2 * seq.Label(pos)
			if pos > start {
				state++
			}
			seq.SetLabel(pos, state)
		}
	}
	return m.mapErr
}

func (m *pairModel) MapSegmentLabels(seq feature.SegmentSequence) error {
	m.segments++
	for pos := 0; pos < seq.Len(); pos++ {
		seq.SetLabel(pos, seq.Label(pos)/2)
	}
	return m.mapErr
}

// segSeq is a segment-style sequence with fixed segment ends.
type segSeq struct {
	*feature.Seq
	ends map[int]int
}

func (s segSeq) SegmentEnd(start int) int { return s.ends[start] }

// failingIter yields its sequences and then reports err.
type failingIter struct {
	*feature.SliceIter
	err error
}

func (it failingIter) Err() error { return it.err }

var errBoom = errors.New("boom")
