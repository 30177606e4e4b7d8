// SPDX-License-Identifier: MIT

// Package dict counts how often each token occurs in the training data,
// overall and per state. Lexical feature kinds use it to separate known
// tokens from rare ones.
//
// The dictionary is persisted in the same stream as the feature id table,
// immediately before it:
//
//	<count>
//	<escaped-token> <total> <state>:<n> <state>:<n> ...
//	...
//
// Tokens are query-escaped and written in ascending order; state counts
// are written in ascending state order.
package dict
