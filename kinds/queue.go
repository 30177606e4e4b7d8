// SPDX-License-Identifier: MIT

package kinds

import (
	"errors"

	"github.com/lgleje/CRF/feature"
)

// ErrNoDictionary indicates a dictionary-backed kind scanned before the
// engine injected a dictionary.
var ErrNoDictionary = errors.New("kinds: dictionary not set")

// queue is the iterator shared by all kinds: StartScan fills buf, Next
// drains it. buf is reused across scans.
type queue struct {
	buf []feature.Descriptor
	pos int
}

func (q *queue) reset() {
	q.buf = q.buf[:0]
	q.pos = 0
}

func (q *queue) push(d feature.Descriptor) { q.buf = append(q.buf, d) }

func (q *queue) HasNext() bool { return q.pos < len(q.buf) }

func (q *queue) Next(out *feature.Descriptor) {
	*out = q.buf[q.pos]
	q.pos++
}

// untrained is embedded by kinds that learn nothing from the data.
type untrained struct{}

func (untrained) RequiresTraining() bool                { return false }
func (untrained) Train(_ feature.Sequence, _ int) error { return nil }
