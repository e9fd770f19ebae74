// Package model defines the immutable input entities of the student-project
// allocation core: Student, Topic, Supervisor and SupervisorExpertiseEntry,
// together with the four-valued expertise Level and the invariants that the
// rest of the core must preserve.
//
// All types here are built once by the grammar package at parse time and are
// never mutated afterwards; the mutable matching state lives in the matching
// package instead.
//
// Errors:
//
//	ErrEmptyID        - an identifier field was empty.
//	ErrEmptyEntries   - a Supervisor declared zero expertise entries.
package model

import "errors"

// Sentinel errors for model-level construction invariants.
var (
	// ErrEmptyID indicates a Student, Topic or Supervisor identifier was empty.
	ErrEmptyID = errors.New("model: identifier is empty")

	// ErrEmptyEntries indicates a Supervisor was built with no expertise entries.
	ErrEmptyEntries = errors.New("model: supervisor has no expertise entries")
)
