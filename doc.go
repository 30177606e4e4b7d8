// Package crf is the feature indexing core of a conditional-random-field
// sequence labeler: it enumerates the feature occurrences that pluggable
// feature kinds produce for a sequence, interns each distinct feature into a
// stable dense id, and persists the id table between runs.
//
// Packages:
//
//	feature/   Descriptor value type and the collaborator capabilities
//	           (Kind, Sequence, Model, DataIter)
//	idtable/   two-phase (open → frozen) interning table and its text format
//	boundary/  legality of a (window, label, previous label) at sequence edges
//	scan/      lazy merge of several kinds into one id-resolved stream
//	featgen/   the engine: state mapping, training and collection passes,
//	           persistence, weight dump, concurrent scans over a frozen table
//	dict/      token dictionary trained from the data, stored with the table
//	kinds/     stock feature kinds (edge, start, end, word, unknown)
//	model/     one-state-per-label model description
//	corpus/    token<TAB>label column reader
//	config/    YAML configuration of the crffeat command
//
// Quick data flow:
//
//	training data ─▶ featgen.Train ─▶ scan.Scanner ─▶ kinds ─▶ idtable (open)
//	                                                       └▶ Freeze
//	evaluation    ─▶ featgen.StartScanAt / Next ─▶ idtable (frozen lookups)
//	                                            └▶ boundary.Valid
//
//	go install github.com/lgleje/CRF/cmd/crffeat@latest
package crf
