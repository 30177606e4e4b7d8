// SPDX-License-Identifier: MIT

package featgen

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lgleje/CRF/dict"
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/idtable"
)

// DefaultMaxMemory is the default lookback bound (first-order features).
const DefaultMaxMemory = 1

// Sentinel errors.
var (
	// ErrNilModel indicates New was called without a model.
	ErrNilModel = errors.New("featgen: nil model")

	// ErrBadMaxMemory indicates a lookback bound below 1.
	ErrBadMaxMemory = errors.New("featgen: max memory must be >= 1")

	// ErrTableFrozen indicates an id collection on an already frozen table.
	ErrTableFrozen = errors.New("featgen: feature ids already frozen")

	// ErrNotFrozen indicates an operation that needs the frozen table.
	ErrNotFrozen = errors.New("featgen: feature ids not frozen")

	// ErrNotForkable indicates a kind without Fork where independent
	// scanners are needed.
	ErrNotForkable = errors.New("featgen: feature kind cannot be forked")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("featgen: workers must be >= 1")
)

// DictionaryUser is implemented by kinds that read the token dictionary.
type DictionaryUser interface {
	UseDictionary(d *dict.Dictionary)
}

// TableUser is implemented by kinds whose trained state is implied by the
// feature ids they produced. Read hands them every loaded table.
type TableUser interface {
	UseTable(t *idtable.Table) error
}

// TrainOptions selects the phases of Train.
//
//   - MapStates: run the state mapping pass over the training labels.
//   - CollectIDs: run the collection pass and freeze the id table.
type TrainOptions struct {
	MapStates  bool
	CollectIDs bool
}

// DefaultTrainOptions enables every phase.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{MapStates: true, CollectIDs: true}
}

// Option configures a Generator.
type Option func(*Generator) error

// WithKinds appends feature kinds; scan order is the order of appending.
func WithKinds(kinds ...feature.Kind) Option {
	return func(g *Generator) error {
		g.kinds = append(g.kinds, kinds...)
		return nil
	}
}

// WithDictionary sets the token dictionary shared with DictionaryUser kinds.
// Without it a dictionary is created when some kind needs one.
func WithDictionary(d *dict.Dictionary) Option {
	return func(g *Generator) error {
		g.dict = d
		return nil
	}
}

// WithMaxMemory sets the largest lookback order scanned by the collection
// pass and by ActiveCounts.
func WithMaxMemory(m int) Option {
	return func(g *Generator) error {
		if m < 1 {
			return ErrBadMaxMemory
		}
		g.maxMemory = m
		return nil
	}
}

// WithLogger sets the structured logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) error {
		if l != nil {
			g.logger = l
		}
		return nil
	}
}

// WithMetrics registers the engine metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *Generator) error {
		m, err := NewMetrics(reg)
		if err != nil {
			return err
		}
		g.metrics = m
		return nil
	}
}
