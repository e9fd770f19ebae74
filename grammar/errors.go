package grammar

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ValidationError per spec.md §7's error taxonomy.
type ErrorKind int

const (
	// KindSyntax marks a malformed line: missing colon, bad integer, unknown
	// level token, or any other shape violation.
	KindSyntax ErrorKind = iota
	// KindSemantic marks a structurally well-formed line whose content
	// violates a domain rule (unknown topic, duplicate id, out-of-range
	// capacity, ...).
	KindSemantic
)

// String renders the kind the way it is reported to users (spec.md §7,
// "a list of (line_number, kind, message)").
func (k ErrorKind) String() string {
	if k == KindSyntax {
		return "SyntaxError"
	}

	return "SemanticError"
}

// Syntax-class sentinels.
var (
	// ErrMissingColon indicates a non-comment, non-blank line had no colon.
	ErrMissingColon = errors.New("grammar: missing ':' separator")

	// ErrEmptyLHS indicates the identifier before the colon was empty.
	ErrEmptyLHS = errors.New("grammar: empty identifier before ':'")

	// ErrEmptyPayload indicates the RHS after the colon was empty.
	ErrEmptyPayload = errors.New("grammar: empty payload after ':'")

	// ErrBadInteger indicates a field expected to be a decimal integer was not.
	ErrBadInteger = errors.New("grammar: malformed integer")

	// ErrInvalidLevel indicates an expertise-entry level token was not one of
	// Expert, Advanced, Intermediate, Beginner.
	ErrInvalidLevel = errors.New("grammar: invalid expertise level")

	// ErrMalformedEntry indicates a supervisor entry did not have exactly
	// three colon-separated fields.
	ErrMalformedEntry = errors.New("grammar: malformed supervisor entry")

	// ErrInvalidIdentifier indicates an identifier used characters outside
	// ASCII alphanumerics and the connectors '+' and '_'.
	ErrInvalidIdentifier = errors.New("grammar: invalid identifier")
)

// Semantic-class sentinels.
var (
	// ErrUnknownTopic indicates a referenced TopicID is absent from the
	// Topics catalog.
	ErrUnknownTopic = errors.New("grammar: unknown topic")

	// ErrDuplicateTopic indicates the same TopicID was declared twice.
	ErrDuplicateTopic = errors.New("grammar: duplicate topic")

	// ErrMissingArea indicates a Topic line had no area string.
	ErrMissingArea = errors.New("grammar: missing area")

	// ErrDuplicateEntry indicates a Supervisor declared the same
	// (Program, TopicID) pair more than once.
	ErrDuplicateEntry = errors.New("grammar: duplicate supervisor entry")

	// ErrCapacityOutOfRange indicates a Supervisor capacity fell outside
	// [model.MinCapacity, model.MaxCapacity].
	ErrCapacityOutOfRange = errors.New("grammar: capacity out of range")

	// ErrEmptySupervisorEntries indicates a Supervisor declared a capacity
	// but zero expertise entries.
	ErrEmptySupervisorEntries = errors.New("grammar: supervisor has no entries")

	// ErrPreferenceCountOutOfRange indicates a Student's preference list
	// length fell outside the configured bound ([1,5], or ==5 in strict mode).
	ErrPreferenceCountOutOfRange = errors.New("grammar: preference count out of range")

	// ErrDuplicatePreference indicates the same TopicID appeared twice in a
	// single Student's preference list.
	ErrDuplicatePreference = errors.New("grammar: duplicate preference")

	// ErrDuplicateStudent indicates the same StudentID was declared twice.
	ErrDuplicateStudent = errors.New("grammar: duplicate student")

	// ErrDuplicateSupervisor indicates the same SupervisorID was declared twice.
	ErrDuplicateSupervisor = errors.New("grammar: duplicate supervisor")
)

// ValidationError is one reported failure, tagged with the 1-based source
// line number and classified per spec.md §7.
type ValidationError struct {
	Line    int
	Kind    ErrorKind
	Err     error
	Message string
}

// Error renders "<kind> at line <n>: <message>: <wrapped sentinel>".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at line %d: %s: %v", e.Kind, e.Line, e.Message, e.Err)
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newErr builds a *ValidationError for the given line/kind/sentinel/context.
func newErr(line int, kind ErrorKind, sentinel error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Line:    line,
		Kind:    kind,
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationErrors aggregates every ValidationError found while parsing one
// or more streams. A nil/empty ValidationErrors means "no errors"; callers
// should use HasErrors rather than a plain nil check after accumulation.
type ValidationErrors []*ValidationError

// HasErrors reports whether any error was accumulated.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error renders every accumulated error, one per line, satisfying the error
// interface so ValidationErrors can be returned as a plain `error`.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "grammar: no errors"
	}

	msg := fmt.Sprintf("grammar: %d validation error(s):\n", len(v))
	for _, e := range v {
		msg += "  - " + e.Error() + "\n"
	}

	return msg
}

// AsError returns v as an `error` if non-empty, or nil otherwise — the
// idiomatic way to fold an accumulator into a single return value.
func (v ValidationErrors) AsError() error {
	if !v.HasErrors() {
		return nil
	}

	return v
}
