// SPDX-License-Identifier: MIT

package feature

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NoLabel marks an absent previous label (first-order features).
const NoLabel = -1

// ErrMalformedDescriptor is returned by ParseDescriptor for text that is not
// of the form kind:payload:label:prev.
var ErrMalformedDescriptor = errors.New("feature: malformed descriptor text")

// Descriptor identifies one candidate feature.
//
// Fields:
//   - Kind: name of the generating feature kind ("E", "S", "W", ...).
//   - Payload: kind-specific data, e.g. a token or a regex id; may be empty.
//   - Label: current state.
//   - PrevLabel: previous state or NoLabel.
type Descriptor struct {
	Kind      string
	Payload   string
	Label     int
	PrevLabel int
}

// Reset clears d in place so a scratch value can be reused by a kind.
func (d *Descriptor) Reset() {
	*d = Descriptor{PrevLabel: NoLabel}
}

// Name returns the human-readable feature name without label information.
func (d Descriptor) Name() string {
	if d.Payload == "" {
		return d.Kind
	}

	return d.Kind + "." + d.Payload
}

// String returns the escaped text form kind:payload:label:prev.
func (d Descriptor) String() string {
	var b strings.Builder
	b.WriteString(url.QueryEscape(d.Kind))
	b.WriteByte(':')
	b.WriteString(url.QueryEscape(d.Payload))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(d.Label))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(d.PrevLabel))

	return b.String()
}

// ParseDescriptor is the inverse of Descriptor.String. An empty kind is
// accepted since the zero Descriptor is a valid table key.
func ParseDescriptor(text string) (Descriptor, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 4 {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrMalformedDescriptor, text)
	}
	kind, err := url.QueryUnescape(parts[0])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: kind %q: %v", ErrMalformedDescriptor, parts[0], err)
	}
	payload, err := url.QueryUnescape(parts[1])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: payload %q: %v", ErrMalformedDescriptor, parts[1], err)
	}
	label, err := strconv.Atoi(parts[2])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: label %q", ErrMalformedDescriptor, parts[2])
	}
	prev, err := strconv.Atoi(parts[3])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: previous label %q", ErrMalformedDescriptor, parts[3])
	}

	return Descriptor{Kind: kind, Payload: payload, Label: label, PrevLabel: prev}, nil
}
