// SPDX-License-Identifier: MIT

package kinds

import (
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/idtable"
)

// Edge emits one transition feature per ordered state pair.
type Edge struct {
	queue
	untrained
	states feature.Boundaries
}

// NewEdge returns an Edge kind over the states of b.
func NewEdge(b feature.Boundaries) *Edge { return &Edge{states: b} }

func (k *Edge) Name() string       { return "edge" }
func (k *Edge) Fork() feature.Kind { return NewEdge(k.states) }

func (k *Edge) StartScan(_ feature.Sequence, start, _ int) error {
	k.reset()
	if start == 0 {
		return nil
	}
	n := k.states.NumStates()
	for prev := 0; prev < n; prev++ {
		for y := 0; y < n; y++ {
			k.push(feature.Descriptor{Kind: "edge", Label: y, PrevLabel: prev})
		}
	}

	return nil
}

// ObservedEdge emits only the transitions seen in the training labels.
type ObservedEdge struct {
	queue
	seen map[[2]int]bool // shared with forks; written by Train and UseTable
	n    int
}

// NewObservedEdge returns an untrained ObservedEdge kind.
func NewObservedEdge(b feature.Boundaries) *ObservedEdge {
	return &ObservedEdge{seen: make(map[[2]int]bool), n: b.NumStates()}
}

func (k *ObservedEdge) Name() string           { return "edge" }
func (k *ObservedEdge) RequiresTraining() bool { return true }

func (k *ObservedEdge) Fork() feature.Kind {
	return &ObservedEdge{seen: k.seen, n: k.n}
}

// Train records the transition into pos.
func (k *ObservedEdge) Train(seq feature.Sequence, pos int) error {
	if pos > 0 {
		k.seen[[2]int{seq.Label(pos - 1), seq.Label(pos)}] = true
	}

	return nil
}

// UseTable replaces the observed transitions with the edge features of a
// frozen table. Forks made earlier see the change.
func (k *ObservedEdge) UseTable(t *idtable.Table) error {
	seen := make(map[[2]int]bool)
	for id := 0; id < t.Size(); id++ {
		d, err := t.Descriptor(id)
		if err != nil {
			return err
		}
		if d.Kind != "edge" || d.PrevLabel < 0 || d.PrevLabel >= k.n || d.Label < 0 || d.Label >= k.n {
			continue
		}
		seen[[2]int{d.PrevLabel, d.Label}] = true
	}
	clear(k.seen)
	for tr := range seen {
		k.seen[tr] = true
	}

	return nil
}

func (k *ObservedEdge) StartScan(_ feature.Sequence, start, _ int) error {
	k.reset()
	if start == 0 {
		return nil
	}
	for prev := 0; prev < k.n; prev++ {
		for y := 0; y < k.n; y++ {
			if k.seen[[2]int{prev, y}] {
				k.push(feature.Descriptor{Kind: "edge", Label: y, PrevLabel: prev})
			}
		}
	}

	return nil
}

// Start emits one feature per start state on windows beginning at 0.
type Start struct {
	queue
	untrained
	states feature.Boundaries
}

// NewStart returns a Start kind over the states of b.
func NewStart(b feature.Boundaries) *Start { return &Start{states: b} }

func (k *Start) Name() string       { return "start" }
func (k *Start) Fork() feature.Kind { return NewStart(k.states) }

func (k *Start) StartScan(_ feature.Sequence, start, _ int) error {
	k.reset()
	if start != 0 {
		return nil
	}
	for y := 0; y < k.states.NumStates(); y++ {
		if k.states.IsStartState(y) {
			k.push(feature.Descriptor{Kind: "start", Label: y, PrevLabel: feature.NoLabel})
		}
	}

	return nil
}

// End emits one feature per end state on windows ending at the last position.
type End struct {
	queue
	untrained
	states feature.Boundaries
}

// NewEnd returns an End kind over the states of b.
func NewEnd(b feature.Boundaries) *End { return &End{states: b} }

func (k *End) Name() string       { return "end" }
func (k *End) Fork() feature.Kind { return NewEnd(k.states) }

func (k *End) StartScan(seq feature.Sequence, _, end int) error {
	k.reset()
	if end != seq.Len()-1 {
		return nil
	}
	for y := 0; y < k.states.NumStates(); y++ {
		if k.states.IsEndState(y) {
			k.push(feature.Descriptor{Kind: "end", Label: y, PrevLabel: feature.NoLabel})
		}
	}

	return nil
}
