// SPDX-License-Identifier: MIT

// Package feature defines the value type that identifies one candidate
// feature occurrence (Descriptor) and the collaborator capabilities the
// indexing core consumes: feature kinds, sequences, models and training
// data iterators.
//
// Descriptor is a comparable struct. Equality is structural, so a
// Descriptor can be used as a map key directly and every assignment is
// an independent copy. This replaces the reusable mutable scratch object
// of older CRF toolkits.
//
// Aliasing rule for Kind.Next:
//
//	Kind.Next writes into a scratch *Descriptor owned by the caller. A kind
//	must not retain the pointer after Next returns, and the caller may
//	overwrite the scratch on the next call. Values handed out by the scanner
//	are copies and may be retained freely.
//
// Text form:
//
//	kind:payload:label:prev
//
// kind and payload are query-escaped, so the text contains neither a space
// nor a bare ':' and can be embedded in the line-oriented id table format.
package feature
