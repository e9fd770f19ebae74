package grammar

import "github.com/dkowalik/spamatch/model"

// ParseStudents parses the students stream (spec.md §6.1):
//
//	<StudentId> ":" <TopicId> ("," <TopicId>){0,4}
//
// topics must be the already-parsed Topics catalog; every preference token
// must exist there. infer derives each Student's Program from its raw id.
// When strict is true, preference-list length must equal exactly
// model.MaxPreferences (spec.md §9 Q2); otherwise any length in
// [model.MinPreferences, model.MaxPreferences] is accepted.
func ParseStudents(
	src string,
	topics map[model.TopicID]model.Topic,
	infer ProgramInferrer,
	strict bool,
) ([]model.Student, ValidationErrors) {
	var errs ValidationErrors
	var out []model.Student
	seen := make(map[model.StudentID]bool)

	for _, rl := range scanLines(src) {
		if !rl.HasColon {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrMissingColon, "student line has no ':'"))
			continue
		}
		if rl.LHS == "" {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrEmptyLHS, "student id is empty"))
			continue
		}
		if !isValidIdentifier(rl.LHS) {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidIdentifier, "student id %q is not a valid identifier", rl.LHS))
			continue
		}

		id := model.StudentID(rl.LHS)
		if seen[id] {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrDuplicateStudent, "student %q declared more than once", id))
			continue
		}
		if rl.RHS == "" {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrPreferenceCountOutOfRange, "student %q has zero preferences", id))
			continue
		}

		tokens := splitCSV(rl.RHS)

		lo, hi := model.MinPreferences, model.MaxPreferences
		if strict {
			lo = model.MaxPreferences
		}
		if len(tokens) < lo || len(tokens) > hi {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrPreferenceCountOutOfRange, "student %q has %d preferences, want [%d,%d]", id, len(tokens), lo, hi))
			continue
		}

		prefs := make([]model.TopicID, 0, len(tokens))
		dup := make(map[model.TopicID]bool, len(tokens))
		lineOK := true

		for _, tok := range tokens {
			if !isValidIdentifier(tok) {
				errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidIdentifier, "student %q preference %q is not a valid identifier", id, tok))
				lineOK = false
				continue
			}

			topicID := model.TopicID(tok)
			if _, ok := topics[topicID]; !ok {
				errs = append(errs, newErr(rl.Line, KindSemantic, ErrUnknownTopic, "student %q prefers unknown topic %q", id, topicID))
				lineOK = false
				continue
			}
			if dup[topicID] {
				errs = append(errs, newErr(rl.Line, KindSemantic, ErrDuplicatePreference, "student %q lists topic %q more than once", id, topicID))
				lineOK = false
				continue
			}
			dup[topicID] = true
			prefs = append(prefs, topicID)
		}

		if !lineOK {
			continue
		}

		seen[id] = true
		out = append(out, model.Student{
			ID:          id,
			Program:     infer.Infer(id),
			Preferences: prefs,
		})
	}

	return out, errs
}
