// Package matching implements component C of the student-project allocation
// core (spec.md §4.C): the round-based proposal/accept/evict engine.
//
// Run is a pure function from a grammar.Input and a pre-built catalog.Catalog
// to a Result: no I/O occurs inside it, and it never returns an error — any
// internal invariant violation (spec.md §3, I1-I6) is a programmer error and
// panics instead (see assertInvariant).
//
// Determinism
//
//	Proposal order within a round is ascending Student.ID; the derived
//	supervisor preference order (see order.go) breaks every tie
//	deterministically. Re-running Run on identical input therefore produces
//	byte-identical Assignment, Diagnostics and RoundLog (spec.md §5, P1).
package matching
