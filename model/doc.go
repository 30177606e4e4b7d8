// SPDX-License-Identifier: MIT

// Package model provides Flat, the one-state-per-label model description
// consumed by the feature indexing engine. Richer models (several states per
// label, segment models) plug in through feature.Model.
package model
