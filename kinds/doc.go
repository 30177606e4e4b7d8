// SPDX-License-Identifier: MIT

// Package kinds provides stock feature kinds for the indexing engine.
//
//	Edge          "edge"    (prev, label) for every state pair, windows with a predecessor
//	ObservedEdge  "edge"    (prev, label) pairs seen in training only; requires training
//	Start         "start"   every start state, windows at position 0
//	End           "end"     every end state, windows at the last position
//	Word          "word"    token at the window end × states it was seen under
//	Unknown       "unknown" rare-token bucket × every state
//
// Word and Unknown read the training dictionary, which the engine injects
// through UseDictionary. Every kind implements feature.Forker.
package kinds
