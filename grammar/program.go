package grammar

import (
	"strings"

	"github.com/dkowalik/spamatch/model"
)

// ProgramInferrer maps a raw StudentID to its bachelor Program. It is the
// single program-specific extension point the core exposes (spec.md §4.A,
// §9 Q3); the engine and diagnostics never hardcode program logic.
type ProgramInferrer interface {
	Infer(id model.StudentID) model.Program
}

// PrefixTableInferrer infers a Program from the leading connector-aware
// alphabetic run of a StudentID (trailing digits stripped), after
// normalizing '_' to '+'. If Table is non-nil, the normalized run is looked
// up there first and the table's value wins; an unmatched run falls back to
// being used as the Program verbatim.
//
// Table keys must already be normalized (i.e. use '+', not '_').
type PrefixTableInferrer struct {
	Table map[string]model.Program
}

// NewDefaultProgramInferrer returns the zero-configuration inferrer: no
// table overrides, identity fallback on the normalized leading run.
func NewDefaultProgramInferrer() ProgramInferrer {
	return PrefixTableInferrer{}
}

// Infer implements ProgramInferrer.
func (p PrefixTableInferrer) Infer(id model.StudentID) model.Program {
	run := leadingRun(string(id))
	norm := NormalizeProgramTag(run)

	if p.Table != nil {
		if mapped, ok := p.Table[norm]; ok {
			return mapped
		}
	}

	return model.Program(norm)
}

// NormalizeProgramTag applies the '_' ≡ '+' equivalence spec.md §6.1
// mandates for cross-file bachelor-tag matching.
func NormalizeProgramTag(tag string) string {
	return strings.ReplaceAll(tag, "_", "+")
}

// leadingRun returns the longest prefix of id made up of ASCII letters and
// the connector characters '+'/'_', stopping at the first digit or other
// rune. This is the "leading alphabetic run" spec.md §4.A describes, widened
// to keep multi-program connector tags (e.g. "BBA_BDBA1") intact.
func leadingRun(id string) string {
	i := 0
	for i < len(id) {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '+' || c == '_':
		default:
			return id[:i]
		}
		i++
	}

	return id
}
