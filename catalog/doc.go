// Package catalog implements component B of the student-project allocation
// core (spec.md §4.B): deriving the effective (topic, bachelor program) to
// owning-supervisor mapping from the raw expertise declarations produced by
// the grammar package.
//
// For every (TopicID, Program) pair that appears in at least one
// SupervisorExpertiseEntry, the owner is the supervisor with the highest
// declared Level; ties are broken by lexicographically smallest
// SupervisorID. A preference with no owner is feasible to list but
// infeasible to match against — it is skipped at proposal time and drives
// the NoSupervisorForCombination diagnostic.
package catalog
