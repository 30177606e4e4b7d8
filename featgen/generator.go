// SPDX-License-Identifier: MIT

package featgen

import (
	"log/slog"

	"github.com/lgleje/CRF/dict"
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/idtable"
	"github.com/lgleje/CRF/scan"
)

// Generator is the feature indexing engine. See the package documentation.
type Generator struct {
	model     feature.Model
	kinds     []feature.Kind
	table     *idtable.Table
	dict      *dict.Dictionary
	scanner   *scan.Scanner
	maxMemory int

	logger  *slog.Logger
	metrics *Metrics
}

// New returns a Generator with an empty open id table.
//
// Errors:
//   - ErrNilModel when m is nil;
//   - any error returned by an option (ErrBadMaxMemory, metric registration).
func New(m feature.Model, opts ...Option) (*Generator, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	g := &Generator{
		model:     m,
		table:     idtable.New(),
		maxMemory: DefaultMaxMemory,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.dict == nil && g.needsDictionary() {
		g.dict = dict.New()
	}
	g.shareDictionary()
	g.scanner = scan.New(g.table, g.model, g.kinds)

	return g, nil
}

func (g *Generator) needsDictionary() bool {
	for _, k := range g.kinds {
		if _, ok := k.(DictionaryUser); ok {
			return true
		}
	}

	return false
}

// shareDictionary hands the dictionary to every kind that reads it.
func (g *Generator) shareDictionary() {
	if g.dict == nil {
		return
	}
	for _, k := range g.kinds {
		if u, ok := k.(DictionaryUser); ok {
			u.UseDictionary(g.dict)
		}
	}
}

// setTable replaces the id table and rebinds the scan cursor to it.
func (g *Generator) setTable(t *idtable.Table) {
	g.table = t
	g.scanner = scan.New(g.table, g.model, g.kinds)
	g.metrics.features(t.Size())
}

// Model returns the model the generator was built for.
func (g *Generator) Model() feature.Model { return g.model }

// Dictionary returns the token dictionary, or nil when none is configured.
func (g *Generator) Dictionary() *dict.Dictionary { return g.dict }

// MaxMemory returns the lookback bound.
func (g *Generator) MaxMemory() int { return g.maxMemory }

// NumFeatures returns the number of feature ids.
func (g *Generator) NumFeatures() int { return g.table.Size() }

// NumStates returns the number of model states.
func (g *Generator) NumStates() int { return g.model.NumStates() }

// Label returns the label of a model state.
func (g *Generator) Label(state int) int { return g.model.LabelOf(state) }

// Frozen reports whether the id table is frozen.
func (g *Generator) Frozen() bool { return g.table.Frozen() }

// Freeze freezes the id table; a frozen table stays untouched.
func (g *Generator) Freeze() error {
	if err := g.table.Freeze(); err != nil {
		return err
	}
	g.metrics.features(g.table.Size())

	return nil
}

// FeatureDescriptor returns the descriptor behind a feature id.
func (g *Generator) FeatureDescriptor(id int) (feature.Descriptor, error) {
	return g.table.Descriptor(id)
}

// FeatureName returns the text form of the descriptor behind a feature id.
func (g *Generator) FeatureName(id int) (string, error) {
	return g.table.Name(id)
}

// StartScanAt starts enumerating the features of the single-position
// window [pos, pos].
func (g *Generator) StartScanAt(seq feature.Sequence, pos int) error {
	return g.scanner.StartAt(seq, pos)
}

// StartScan starts enumerating the features of the lookback window
// [prevBoundary+1, end].
func (g *Generator) StartScan(seq feature.Sequence, prevBoundary, end int) error {
	return g.scanner.StartAfter(seq, prevBoundary, end)
}

// HasNext reports whether the current scan has a pending feature.
func (g *Generator) HasNext() bool { return g.scanner.HasNext() }

// Next returns the pending feature of the current scan.
func (g *Generator) Next() (scan.Feature, error) {
	before := g.scanner.Stats()
	f, err := g.scanner.Next()
	g.metrics.observe(before, g.scanner.Stats())

	return f, err
}

// LabelMappingNeeded reports whether training labels must be mapped to states.
func (g *Generator) LabelMappingNeeded() bool {
	return g.model.NumStates() != g.model.NumLabels()
}

// MapStatesToLabels rewrites the states of a decoded sequence into labels.
// It reports false, touching nothing, when states and labels coincide.
func (g *Generator) MapStatesToLabels(seq feature.Sequence) (bool, error) {
	if !g.LabelMappingNeeded() {
		return false, nil
	}
	if seg, ok := seq.(feature.SegmentSequence); ok {
		return true, g.model.MapSegmentLabels(seg)
	}
	for pos := 0; pos < seq.Len(); pos++ {
		seq.SetLabel(pos, g.model.LabelOf(seq.Label(pos)))
	}

	return true, nil
}

// LogStats logs the model, dictionary and feature counts at info level.
func (g *Generator) LogStats() {
	attrs := []any{
		slog.Int("states", g.model.NumStates()),
		slog.Int("labels", g.model.NumLabels()),
		slog.Int("features", g.table.Size()),
		slog.Bool("frozen", g.table.Frozen()),
	}
	if g.dict != nil {
		attrs = append(attrs, slog.Int("dictionary", g.dict.Len()))
	}
	g.logger.Info("feature generator", attrs...)
}
