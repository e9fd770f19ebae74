// Package spamatch (spa-core) is a deterministic, capacity-constrained,
// preference-driven student-project allocation matcher.
//
// 🚀 What is spamatch?
//
//	A many-to-one matcher that assigns every student to at most one topic,
//	following the structure of the SPA-student algorithm of Abraham, Irving
//	and Manlove (2007):
//
//	  • Students rank up to five topics in strict preference order
//	  • Topics are owned by whichever supervisor has the highest declared
//	    expertise for the student's bachelor program
//	  • Each supervisor has a single global capacity shared across all of
//	    the topics they own
//	  • A round-based proposal/accept/evict procedure converges to a
//	    stable assignment under the derived supervisor preference order
//
// ✨ Why spamatch?
//
//   - Deterministic    — identical input always produces identical output
//   - Transparent      — every unmatched student carries a classified reason
//   - Auditable        — per-round counts and blocking-pair diagnostics
//   - Pure core        — the matching engine performs no I/O and never fails
//
// Under the hood, the core is organized into subpackages, leaves first:
//
//	model/        — Student, Topic, Supervisor, expertise entries, invariants
//	grammar/      — line-oriented parser & validator for the three input streams
//	catalog/      — derives the (topic, program) → owning-supervisor mapping
//	matching/     — the round-based proposal/accept/evict engine
//	diagnostics/  — blocking-pair detection and unmatched-student classification
//	metrics/      — match rate, rank histogram, utilization, Gini fairness
//	report/       — assembles the structured output of §6.2 and exports it
//
// A thin cobra-based CLI lives under cmd/spamatch; see SPEC_FULL.md and
// DESIGN.md for the full expanded specification and the grounding ledger.
package spamatch
