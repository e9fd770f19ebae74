// Package spalog wraps zerolog's global logger for the CLI layer. The
// matching engine itself stays a pure function (spec.md §5): only cmd/spamatch
// calls into this package, to report CLI lifecycle events and round-log
// progress as structured log lines.
package spalog
