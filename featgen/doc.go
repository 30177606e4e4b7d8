// SPDX-License-Identifier: MIT

// Package featgen is the feature indexing engine of the CRF trainer.
//
// A Generator composes, in a fixed order, the feature kinds of a model, one
// id table, an optional token dictionary and one scan cursor. Its lifecycle:
//
//	g, _ := featgen.New(m, featgen.WithKinds(...), featgen.WithMaxMemory(2))
//	g.Train(iter, featgen.DefaultTrainOptions()) // map states, train, collect, freeze
//	g.WriteFile("features.txt")                  // dictionary section, then id table
//
//	// later, in another process
//	g.ReadFile("features.txt")                   // loads straight into the frozen phase
//	for g.StartScanAt(seq, pos); g.HasNext(); { f, _ := g.Next() ... }
//
// Train runs, in order:
//
//  1. the state mapping pass (only when the model has more states than labels);
//  2. dictionary training, when a dictionary is configured;
//  3. the training pass: Train(seq, pos) of every kind that requires training,
//     once per position (skipped when no kind requires training);
//  4. the collection pass: every position l, every lookback order m from 1 to
//     the memory bound while l-m >= -1, scanning [l-m+1, l] against the open
//     table; then the table is frozen.
//
// Kinds that implement DictionaryUser receive the dictionary from New and
// again whenever Read replaces it; nothing else shares it. Kinds that
// implement TableUser rebuild their trained state from a table loaded by
// Read, so a reloaded generator emits the same ids it collected.
//
// Concurrency: a Generator has one scan cursor and is single-threaded.
// Once the table is frozen, NewScanner hands out independent scanners (with
// forked kinds) over the shared table, and ActiveCounts uses them to scan
// many sequences in parallel.
package featgen
