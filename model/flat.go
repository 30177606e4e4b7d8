// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/lgleje/CRF/feature"
)

// ErrBadLabelCount indicates a Flat model with no labels.
var ErrBadLabelCount = errors.New("model: number of labels must be > 0")

// ErrStateOutOfRange indicates a start or end state outside [0, labels).
var ErrStateOutOfRange = errors.New("model: state out of range")

// Flat has exactly one state per label, so every mapping is the identity.
// By default every state may start and end a sequence.
type Flat struct {
	labels int
	start  map[int]bool // nil ⇒ every state
	end    map[int]bool // nil ⇒ every state
}

// Option configures a Flat model.
type Option func(*Flat) error

// WithStartStates restricts the states allowed at position 0.
func WithStartStates(states ...int) Option {
	return func(m *Flat) error {
		set, err := m.stateSet(states)
		m.start = set
		return err
	}
}

// WithEndStates restricts the states allowed at the last position.
func WithEndStates(states ...int) Option {
	return func(m *Flat) error {
		set, err := m.stateSet(states)
		m.end = set
		return err
	}
}

// NewFlat returns a Flat model over labels labels.
func NewFlat(labels int, opts ...Option) (*Flat, error) {
	if labels <= 0 {
		return nil, ErrBadLabelCount
	}
	m := &Flat{labels: labels}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Flat) stateSet(states []int) (map[int]bool, error) {
	set := make(map[int]bool, len(states))
	for _, s := range states {
		if s < 0 || s >= m.labels {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStateOutOfRange, s, m.labels)
		}
		set[s] = true
	}

	return set, nil
}

func (m *Flat) NumStates() int        { return m.labels }
func (m *Flat) NumLabels() int        { return m.labels }
func (m *Flat) LabelOf(state int) int { return state }

func (m *Flat) IsStartState(state int) bool {
	if state < 0 || state >= m.labels {
		return false
	}
	return m.start == nil || m.start[state]
}

func (m *Flat) IsEndState(state int) bool {
	if state < 0 || state >= m.labels {
		return false
	}
	return m.end == nil || m.end[state]
}

func (m *Flat) MapStates(feature.Sequence) error               { return nil }
func (m *Flat) MapSegmentStates(feature.SegmentSequence) error { return nil }
func (m *Flat) MapSegmentLabels(feature.SegmentSequence) error { return nil }
