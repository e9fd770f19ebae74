// Package grammar implements component A of the student-project allocation
// core: a line-oriented parser and validator for the three input streams
// described in spec.md §4.A and §6.1 (students, topics, supervisors).
//
// What
//
//   - Lines beginning with '#' (after leading whitespace) and blank lines
//     are skipped.
//   - Every remaining line has the shape "LHS: RHS", split on the first
//     colon only; RHS grammar is stream-specific (see students.go, topics.go,
//     supervisors.go).
//   - All three streams accept LF or CRLF line endings, trim surrounding
//     whitespace on every field, and split comma-separated payloads on ','
//     with optional surrounding whitespace.
//
// Why
//
//   - Parsing and validation are deliberately separated from the engine: the
//     engine never sees malformed input, and every failure the user can act
//     on is reported together instead of one-at-a-time (spec.md §7).
//
// Errors
//
//	Parse returns a single ValidationErrors aggregate (a slice of
//	line-tagged (kind, message) pairs) when any stream fails; the engine is
//	never invoked in that case. Individual sentinels (ErrUnknownTopic,
//	ErrDuplicateTopic, ...) are embedded in each ValidationError and are
//	meant to be matched with errors.Is/errors.As, never by message text.
//
// See: SPEC_FULL.md for the full expanded grammar and DESIGN.md for the
// grounding of each validation rule.
package grammar
