// SPDX-License-Identifier: MIT

// Package idtable interns feature descriptors into dense integer ids.
//
// A Table lives in exactly one of two phases:
//
//	open: LookupOrAssign hands out ids 0,1,2,... in first-seen order.
//	frozen: the descriptor set is fixed; LookupOrAssign only looks up and
//	        returns NotFound for unseen descriptors. The reverse mapping
//	        id → descriptor is built once by Freeze and never changes.
//
// The phase is a tagged state value (*openState or *frozenState) rather than
// a flag, so a frozen table has no code path that can mutate its map.
// A zero-value Table is in neither phase and rejects every call with
// ErrInconsistentState; use New or Read.
//
// Persisted format (line oriented text):
//
//	<count>
//	<descriptor-text> <id>
//	...
//
// Read populates a table directly in the frozen phase and fails with
// ErrFormat on any inconsistency; it never returns a partial table.
//
// Concurrency:
//   - Open tables are mutated by the collection pass only and are not safe
//     for concurrent use.
//   - Frozen tables are read-only and safe to share between goroutines.
package idtable
