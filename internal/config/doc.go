// Package config loads the CLI's optional YAML configuration file and
// exposes the three Open Questions spec.md §9 calls out for explicit,
// caller-controlled decision rather than a silent guess: preference-length
// strictness, eviction reproposal, and program-prefix inference.
package config
