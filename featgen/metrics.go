// SPDX-License-Identifier: MIT

package featgen

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lgleje/CRF/scan"
)

// Metrics exposes the engine counters.
type Metrics struct {
	Features   prometheus.Gauge
	Sequences  *prometheus.CounterVec // by pass
	Emitted    prometheus.Counter
	Unassigned prometheus.Counter
	Filtered   prometheus.Counter
}

// NewMetrics creates the engine metrics and registers them on reg when reg
// is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Features: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crf",
			Subsystem: "featgen",
			Name:      "features",
			Help:      "Number of feature ids in the id table",
		}),
		Sequences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crf",
			Subsystem: "featgen",
			Name:      "sequences_total",
			Help:      "Sequences visited, by pass",
		}, []string{"pass"}),
		Emitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crf",
			Subsystem: "featgen",
			Name:      "occurrences_emitted_total",
			Help:      "Feature occurrences emitted by scans",
		}),
		Unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crf",
			Subsystem: "featgen",
			Name:      "occurrences_unassigned_total",
			Help:      "Candidate occurrences dropped because the frozen table lacks them",
		}),
		Filtered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crf",
			Subsystem: "featgen",
			Name:      "occurrences_filtered_total",
			Help:      "Candidate occurrences dropped by the boundary rule",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Features, m.Sequences, m.Emitted, m.Unassigned, m.Filtered} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe adds the scan counters accumulated since before.
func (m *Metrics) observe(before, after scan.Stats) {
	if m == nil {
		return
	}
	m.Emitted.Add(float64(after.Emitted - before.Emitted))
	m.Unassigned.Add(float64(after.Unassigned - before.Unassigned))
	m.Filtered.Add(float64(after.Filtered - before.Filtered))
}

func (m *Metrics) sequence(pass string) {
	if m == nil {
		return
	}
	m.Sequences.WithLabelValues(pass).Inc()
}

func (m *Metrics) features(n int) {
	if m == nil {
		return
	}
	m.Features.Set(float64(n))
}
