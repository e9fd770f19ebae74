// Package diagnostics implements component D: stability analysis and
// unmatched-student classification over a completed matching.Result
// (spec.md §4.D).
//
// Both FindBlockingPairs and ClassifyUnmatched are pure, read-only functions
// over a matching.Result and the grammar.Input/catalog.Catalog it was
// produced from; neither mutates the result.
package diagnostics
