// Package metrics implements component E: evaluation metrics over a
// completed matching.Result (spec.md §4.E).
//
// Compute is a pure, read-only function; it never mutates its inputs.
package metrics
