// SPDX-License-Identifier: MIT

// Package corpus reads labeled token sequences from column text:
//
//	# comment
//	token<TAB>label
//	token<TAB>label
//
//	token<TAB>label
//
// A blank line ends a sequence. The label column may be omitted for
// unlabeled data; such positions get label 0.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgleje/CRF/feature"
)

// Sentinel errors.
var (
	// ErrFormat indicates a line that cannot be read as token and label.
	ErrFormat = errors.New("corpus: malformed line")

	// ErrUnknownLabel indicates a label outside the configured label set.
	ErrUnknownLabel = errors.New("corpus: unknown label")
)

// Corpus is a list of sequences with labels indexed by the label set.
type Corpus struct {
	Seqs []*feature.Seq
}

// Sequences returns the sequences as feature.Sequence values.
func (c *Corpus) Sequences() []feature.Sequence {
	out := make([]feature.Sequence, len(c.Seqs))
	for i, s := range c.Seqs {
		out[i] = s
	}

	return out
}

// Iter returns a DataIter over the sequences.
func (c *Corpus) Iter() *feature.SliceIter {
	return feature.NewSliceIter(c.Sequences()...)
}

// Read parses r; labels lists the label names, a label's id being its index.
func Read(r io.Reader, labels []string) (*Corpus, error) {
	ids := make(map[string]int, len(labels))
	for i, l := range labels {
		ids[l] = i
	}

	c := &Corpus{}
	cur := feature.NewSeq(nil, nil)
	flush := func() {
		if cur.Len() > 0 {
			c.Seqs = append(c.Seqs, cur)
			cur = feature.NewSeq(nil, nil)
		}
	}

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			flush()
			continue
		case strings.HasPrefix(line, "#"):
			continue
		}

		tok, label, hasLabel := strings.Cut(line, "\t")
		if tok == "" || strings.Contains(label, "\t") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrFormat, n, line)
		}
		id := 0
		if hasLabel && label != "" {
			var ok bool
			if id, ok = ids[label]; !ok {
				return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownLabel, n, label)
			}
		}
		cur.Tokens = append(cur.Tokens, tok)
		cur.Labels = append(cur.Labels, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return c, nil
}
