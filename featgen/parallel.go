// SPDX-License-Identifier: MIT

package featgen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/scan"
)

// NewScanner returns a scanner independent of the generator's own cursor,
// sharing the frozen id table and using forked kinds.
//
// Errors:
//   - ErrNotFrozen before the table is frozen;
//   - ErrNotForkable when some kind does not implement feature.Forker.
func (g *Generator) NewScanner() (*scan.Scanner, error) {
	if !g.table.Frozen() {
		return nil, ErrNotFrozen
	}
	forks := make([]feature.Kind, len(g.kinds))
	for i, k := range g.kinds {
		f, ok := k.(feature.Forker)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotForkable, k.Name())
		}
		forks[i] = f.Fork()
	}

	return scan.New(g.table, g.model, forks), nil
}

// ActiveCounts scans every window of every sequence (the windows of the
// collection pass) against the frozen table, using up to workers goroutines,
// and returns per sequence the number of valid feature occurrences.
//
// The first error cancels the remaining work and is returned.
func (g *Generator) ActiveCounts(ctx context.Context, seqs []feature.Sequence, workers int) ([]int, error) {
	if workers < 1 {
		return nil, ErrBadWorkers
	}
	if !g.table.Frozen() {
		return nil, ErrNotFrozen
	}

	counts := make([]int, len(seqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, seq := range seqs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := g.NewScanner()
			if err != nil {
				return err
			}
			n := 0
			err = windows(seq, g.maxMemory, func(prev, end int) error {
				if err := sc.StartAfter(seq, prev, end); err != nil {
					return err
				}
				for sc.HasNext() {
					if _, err := sc.Next(); err != nil {
						return err
					}
					n++
				}
				return sc.Err()
			})
			g.metrics.observe(scan.Stats{}, sc.Stats())
			if err != nil {
				return fmt.Errorf("featgen: sequence %d: %w", i, err)
			}
			counts[i] = n
			g.metrics.sequence("count")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}
