// SPDX-License-Identifier: MIT

package kinds

import (
	"github.com/lgleje/CRF/dict"
	"github.com/lgleje/CRF/feature"
)

// DefaultRareThreshold is the count at or below which a token is rare.
const DefaultRareThreshold = 1

// Word emits the token at the window end once per state it was seen under
// in training, for tokens seen more than the rare threshold.
type Word struct {
	queue
	untrained
	dict      *dict.Dictionary
	threshold int
}

// NewWord returns a Word kind; threshold < 0 selects DefaultRareThreshold.
func NewWord(threshold int) *Word {
	if threshold < 0 {
		threshold = DefaultRareThreshold
	}

	return &Word{threshold: threshold}
}

func (k *Word) Name() string                     { return "word" }
func (k *Word) UseDictionary(d *dict.Dictionary) { k.dict = d }

func (k *Word) Fork() feature.Kind {
	return &Word{dict: k.dict, threshold: k.threshold}
}

func (k *Word) StartScan(seq feature.Sequence, _, end int) error {
	k.reset()
	if k.dict == nil {
		return ErrNoDictionary
	}
	tok := seq.Token(end)
	if k.dict.Count(tok) <= k.threshold {
		return nil
	}
	for _, y := range k.dict.States(tok) {
		k.push(feature.Descriptor{Kind: "word", Payload: tok, Label: y, PrevLabel: feature.NoLabel})
	}

	return nil
}

// Unknown emits one feature per state when the token at the window end is
// rare or unseen, so rare tokens share weights.
type Unknown struct {
	queue
	untrained
	dict      *dict.Dictionary
	states    feature.Boundaries
	threshold int
}

// NewUnknown returns an Unknown kind; threshold < 0 selects DefaultRareThreshold.
func NewUnknown(b feature.Boundaries, threshold int) *Unknown {
	if threshold < 0 {
		threshold = DefaultRareThreshold
	}

	return &Unknown{states: b, threshold: threshold}
}

func (k *Unknown) Name() string                     { return "unknown" }
func (k *Unknown) UseDictionary(d *dict.Dictionary) { k.dict = d }

func (k *Unknown) Fork() feature.Kind {
	return &Unknown{dict: k.dict, states: k.states, threshold: k.threshold}
}

func (k *Unknown) StartScan(seq feature.Sequence, _, end int) error {
	k.reset()
	if k.dict == nil {
		return ErrNoDictionary
	}
	if k.dict.Count(seq.Token(end)) > k.threshold {
		return nil
	}
	for y := 0; y < k.states.NumStates(); y++ {
		k.push(feature.Descriptor{Kind: "unknown", Label: y, PrevLabel: feature.NoLabel})
	}

	return nil
}
