// SPDX-License-Identifier: MIT

package featgen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lgleje/CRF/feature"
)

// Train prepares the generator from training data; see the package
// documentation for the phase order. It reports whether training labels
// were mapped to states.
//
// Errors from the model, the kinds or iter propagate wrapped; the id table
// is left open when the collection pass fails.
func (g *Generator) Train(iter feature.DataIter, opts TrainOptions) (bool, error) {
	mapped := false
	if opts.MapStates {
		var err error
		if mapped, err = g.MapStates(iter); err != nil {
			return false, err
		}
	}
	if g.dict != nil {
		began := time.Now()
		if err := g.dict.Train(iter); err != nil {
			return mapped, fmt.Errorf("featgen: dictionary: %w", err)
		}
		g.logger.Info("dictionary trained", slog.Int("tokens", g.dict.Len()), slog.Duration("took", time.Since(began)))
	}
	if err := g.TrainKinds(iter); err != nil {
		return mapped, err
	}
	if opts.CollectIDs {
		if _, err := g.CollectIDs(iter); err != nil {
			return mapped, err
		}
	}

	return mapped, nil
}

// MapStates rewrites the labels of every training sequence into model
// states. It reports false, touching nothing, when states and labels
// coincide.
func (g *Generator) MapStates(iter feature.DataIter) (bool, error) {
	if !g.LabelMappingNeeded() {
		return false, nil
	}
	for iter.Reset(); iter.Next(); {
		seq := iter.Sequence()
		var err error
		if seg, ok := seq.(feature.SegmentSequence); ok {
			err = g.model.MapSegmentStates(seg)
		} else {
			err = g.model.MapStates(seq)
		}
		if err != nil {
			return false, fmt.Errorf("featgen: state mapping: %w", err)
		}
		g.metrics.sequence("map")
	}
	if err := iter.Err(); err != nil {
		return false, fmt.Errorf("featgen: training data: %w", err)
	}

	return true, nil
}

// TrainKinds runs the training pass for the kinds that require training.
func (g *Generator) TrainKinds(iter feature.DataIter) error {
	var trainees []feature.Kind
	for _, k := range g.kinds {
		if k.RequiresTraining() {
			trainees = append(trainees, k)
		}
	}
	if len(trainees) == 0 {
		return nil
	}

	for iter.Reset(); iter.Next(); {
		seq := iter.Sequence()
		for pos := 0; pos < seq.Len(); pos++ {
			for _, k := range trainees {
				if err := k.Train(seq, pos); err != nil {
					return fmt.Errorf("featgen: train kind %s: %w", k.Name(), err)
				}
			}
		}
		g.metrics.sequence("train")
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("featgen: training data: %w", err)
	}
	g.logger.Debug("kinds trained", slog.Int("kinds", len(trainees)))

	return nil
}

// CollectIDs runs the collection pass, freezes the id table and returns the
// number of feature ids.
func (g *Generator) CollectIDs(iter feature.DataIter) (int, error) {
	began := time.Now()
	if err := g.Collect(iter); err != nil {
		return 0, err
	}
	if err := g.Freeze(); err != nil {
		return 0, err
	}
	g.logger.Info("feature ids collected",
		slog.Int("features", g.table.Size()),
		slog.Int("max_memory", g.maxMemory),
		slog.Duration("took", time.Since(began)))

	return g.table.Size(), nil
}

// Collect runs the collection pass without freezing. Running it again
// revisits existing ids and only adds descriptors not seen before.
//
// Errors:
//   - ErrTableFrozen when the table no longer accepts ids;
//   - scan, kind and iterator errors, wrapped.
func (g *Generator) Collect(iter feature.DataIter) error {
	if g.table.Frozen() {
		return ErrTableFrozen
	}
	before := g.scanner.Stats()
	defer func() { g.metrics.observe(before, g.scanner.Stats()) }()

	for iter.Reset(); iter.Next(); {
		seq := iter.Sequence()
		if err := g.forEachWindow(seq, func() error {
			for g.scanner.HasNext() {
				if _, err := g.scanner.Next(); err != nil {
					return err
				}
			}
			return g.scanner.Err()
		}); err != nil {
			return fmt.Errorf("featgen: collect: %w", err)
		}
		g.metrics.sequence("collect")
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("featgen: training data: %w", err)
	}
	g.metrics.features(g.table.Size())

	return nil
}

// forEachWindow starts the generator's scanner on every window the
// collection pass visits in seq and calls drain after each start.
func (g *Generator) forEachWindow(seq feature.Sequence, drain func() error) error {
	return windows(seq, g.maxMemory, func(prev, end int) error {
		if err := g.scanner.StartAfter(seq, prev, end); err != nil {
			return err
		}
		return drain()
	})
}

// windows calls fn(prevBoundary, end) for every position end of seq and
// every lookback order m in [1, maxMemory] with end-m >= -1.
func windows(seq feature.Sequence, maxMemory int, fn func(prev, end int) error) error {
	for l := 0; l < seq.Len(); l++ {
		for m := 1; m <= maxMemory && l-m >= -1; m++ {
			if err := fn(l-m, l); err != nil {
				return err
			}
		}
	}

	return nil
}
