package grammar

import "github.com/dkowalik/spamatch/model"

// ParseTopics parses the topics stream (spec.md §6.1):
//
//	<TopicId> ":" <Area>
//
// Area is the remainder of the line after the first colon, trimmed; it may
// itself contain colons or commas. Every error is accumulated; parsing does
// not stop at the first failure.
func ParseTopics(src string) (map[model.TopicID]model.Topic, ValidationErrors) {
	var errs ValidationErrors
	topics := make(map[model.TopicID]model.Topic)

	for _, rl := range scanLines(src) {
		if !rl.HasColon {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrMissingColon, "topic line has no ':'"))
			continue
		}
		if rl.LHS == "" {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrEmptyLHS, "topic id is empty"))
			continue
		}
		if !isValidIdentifier(rl.LHS) {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidIdentifier, "topic id %q is not a valid identifier", rl.LHS))
			continue
		}

		id := model.TopicID(rl.LHS)
		if _, dup := topics[id]; dup {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrDuplicateTopic, "topic %q declared more than once", id))
			continue
		}
		if rl.RHS == "" {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrMissingArea, "topic %q has no area", id))
			continue
		}

		topics[id] = model.Topic{ID: id, Area: rl.RHS}
	}

	return topics, errs
}
