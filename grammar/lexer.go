package grammar

import "strings"

// rawLine is one non-comment, non-blank source line split at its first
// colon, with both halves trimmed of surrounding whitespace.
type rawLine struct {
	Line int
	LHS  string
	RHS  string
}

// scanLines splits src into non-blank, non-comment rawLineResults. Lines beginning
// with '#' after leading whitespace, and lines that are blank after
// trimming, are skipped entirely (never reported as errors). Line numbers
// are 1-based and counted over the original, unfiltered input so error
// messages point at the real source line. CRLF and LF endings are both
// accepted.
//
// Lines that are non-blank, non-comment but lack a colon are still
// returned, with RHS left empty and a marker so callers can raise
// ErrMissingColon with the right line number; callers distinguish this case
// via HasColon.
func scanLines(src string) []rawLineResult {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	out := make([]rawLineResult, 0, len(lines))
	for i, text := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			out = append(out, rawLineResult{Line: lineNo, HasColon: false})
			continue
		}

		out = append(out, rawLineResult{
			Line:     lineNo,
			HasColon: true,
			LHS:      strings.TrimSpace(trimmed[:idx]),
			RHS:      strings.TrimSpace(trimmed[idx+1:]),
		})
	}

	return out
}

// rawLineResult is the outcome of scanning one physical line.
type rawLineResult struct {
	Line     int
	HasColon bool
	LHS      string
	RHS      string
}

// splitCSV splits a comma-separated payload into trimmed, non-collapsed
// tokens. An empty payload yields a single empty-string token so callers can
// detect and report it explicitly.
func splitCSV(payload string) []string {
	parts := strings.Split(payload, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}

	return out
}

// isValidIdentifier reports whether id is non-empty and consists solely of
// ASCII alphanumerics and the connectors '+' and '_' (spec.md §6.1).
func isValidIdentifier(id string) bool {
	if id == "" {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '+' || r == '_':
		default:
			return false
		}
	}

	return true
}
