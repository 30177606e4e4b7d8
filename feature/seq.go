// SPDX-License-Identifier: MIT

package feature

// Seq is an in-memory Sequence of tokens and integer labels.
type Seq struct {
	Tokens []string
	Labels []int
}

// NewSeq returns a Seq over tokens with labels; labels may be nil for
// unlabeled data, in which case every label starts at 0.
func NewSeq(tokens []string, labels []int) *Seq {
	if labels == nil {
		labels = make([]int, len(tokens))
	}

	return &Seq{Tokens: tokens, Labels: labels}
}

func (s *Seq) Len() int                { return len(s.Tokens) }
func (s *Seq) Token(pos int) string    { return s.Tokens[pos] }
func (s *Seq) Label(pos int) int       { return s.Labels[pos] }
func (s *Seq) SetLabel(pos, label int) { s.Labels[pos] = label }

// SliceIter is a DataIter over a fixed slice of sequences.
type SliceIter struct {
	seqs []Sequence
	pos  int
}

// NewSliceIter returns an iterator positioned before the first sequence.
func NewSliceIter(seqs ...Sequence) *SliceIter {
	return &SliceIter{seqs: seqs, pos: -1}
}

func (it *SliceIter) Reset() { it.pos = -1 }

func (it *SliceIter) Next() bool {
	if it.pos+1 >= len(it.seqs) {
		it.pos = len(it.seqs)
		return false
	}
	it.pos++

	return true
}

func (it *SliceIter) Sequence() Sequence { return it.seqs[it.pos] }
func (it *SliceIter) Err() error         { return nil }
func (it *SliceIter) Len() int           { return len(it.seqs) }
