// Package report assembles the structured output spec.md §6.2 describes —
// assignment table, diagnostics, metrics block, round log — into a single
// value external tools can serialize. Build performs no I/O, and apart from
// the random RunID it stamps on each report its output depends only on its
// inputs; (*Report).ToYAML and
// (*Report).ToJSON are the only I/O-adjacent operations, and even those
// just marshal to bytes rather than touching a filesystem.
package report
