// SPDX-License-Identifier: MIT

// Package scan merges the descriptor streams of several feature kinds into
// one lazy, id-resolved, boundary-filtered stream for a scan window.
//
// A Scanner owns a single cursor. Start (or StartAt / StartAfter) resets the
// cursor, starts every kind on the same window and primes the first element;
// HasNext and Next pull from it on demand. Nothing runs in the background.
//
// Advance loop:
//
//  1. skip kinds whose iterator is exhausted, in the fixed kind order;
//  2. pull the next raw descriptor from the current kind;
//  3. resolve its id in the table (assigns while the table is open,
//     looks up once frozen);
//  4. drop it silently if the frozen table does not know it;
//  5. drop it if the boundary rule rejects it;
//  6. otherwise it is the next element.
//
// Ids are resolved before the boundary rule runs, so a collection scan over
// an open table registers descriptors even when this window rejects them.
//
// Determinism: for the same kinds, input and table state the emitted
// sequence is identical, element for element.
//
// Concurrency: a Scanner is not safe for concurrent use, and starting a new
// scan abandons the previous one. Several Scanners may share one frozen
// table; each needs its own kind instances (see feature.Forker).
package scan
