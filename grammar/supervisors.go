package grammar

import (
	"strconv"
	"strings"

	"github.com/dkowalik/spamatch/model"
)

// entryKey identifies a (Program, TopicID) pair for duplicate detection
// within a single supervisor's declared entries.
type entryKey struct {
	Program model.Program
	Topic   model.TopicID
}

// ParseSupervisors parses the supervisors stream (spec.md §6.1):
//
//	<SupervisorId> ":" <Capacity> ("," <BachelorTag> ":" <TopicId> ":" <Level>)+
//
// Every referenced TopicID must already exist in topics. Bachelor tags are
// normalized ('_' -> '+') before being stored on the resulting
// SupervisorExpertiseEntry.
func ParseSupervisors(src string, topics map[model.TopicID]model.Topic) ([]model.Supervisor, ValidationErrors) {
	var errs ValidationErrors
	var out []model.Supervisor
	seen := make(map[model.SupervisorID]bool)

	for _, rl := range scanLines(src) {
		if !rl.HasColon {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrMissingColon, "supervisor line has no ':'"))
			continue
		}
		if rl.LHS == "" {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrEmptyLHS, "supervisor id is empty"))
			continue
		}
		if !isValidIdentifier(rl.LHS) {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidIdentifier, "supervisor id %q is not a valid identifier", rl.LHS))
			continue
		}

		id := model.SupervisorID(rl.LHS)
		if seen[id] {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrDuplicateSupervisor, "supervisor %q declared more than once", id))
			continue
		}

		fields := splitCSV(rl.RHS)
		if len(fields) == 0 || fields[0] == "" {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrEmptyPayload, "supervisor %q has no capacity", id))
			continue
		}

		capacity, convErr := strconv.Atoi(fields[0])
		if convErr != nil {
			errs = append(errs, newErr(rl.Line, KindSyntax, ErrBadInteger, "supervisor %q capacity %q is not an integer", id, fields[0]))
			continue
		}
		if capacity < model.MinCapacity || capacity > model.MaxCapacity {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrCapacityOutOfRange, "supervisor %q capacity %d outside [%d,%d]", id, capacity, model.MinCapacity, model.MaxCapacity))
			continue
		}

		entryTokens := fields[1:]
		if len(entryTokens) == 0 {
			errs = append(errs, newErr(rl.Line, KindSemantic, ErrEmptySupervisorEntries, "supervisor %q declares zero entries", id))
			continue
		}

		entries := make([]model.SupervisorExpertiseEntry, 0, len(entryTokens))
		dup := make(map[entryKey]bool, len(entryTokens))
		lineOK := true

		for _, tok := range entryTokens {
			parts := strings.Split(tok, ":")
			if len(parts) != 3 {
				errs = append(errs, newErr(rl.Line, KindSyntax, ErrMalformedEntry, "supervisor %q entry %q must be Bachelor:Topic:Level", id, tok))
				lineOK = false
				continue
			}

			program := model.Program(NormalizeProgramTag(strings.TrimSpace(parts[0])))
			topicTok := strings.TrimSpace(parts[1])
			levelTok := strings.TrimSpace(parts[2])

			if !isValidIdentifier(topicTok) {
				errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidIdentifier, "supervisor %q entry topic %q is not a valid identifier", id, topicTok))
				lineOK = false
				continue
			}
			topicID := model.TopicID(topicTok)
			if _, ok := topics[topicID]; !ok {
				errs = append(errs, newErr(rl.Line, KindSemantic, ErrUnknownTopic, "supervisor %q references unknown topic %q", id, topicID))
				lineOK = false
				continue
			}

			level, ok := model.ParseLevel(levelTok)
			if !ok {
				errs = append(errs, newErr(rl.Line, KindSyntax, ErrInvalidLevel, "supervisor %q entry has invalid level %q", id, levelTok))
				lineOK = false
				continue
			}

			key := entryKey{Program: program, Topic: topicID}
			if dup[key] {
				errs = append(errs, newErr(rl.Line, KindSemantic, ErrDuplicateEntry, "supervisor %q declares (%s,%s) more than once", id, program, topicID))
				lineOK = false
				continue
			}
			dup[key] = true

			entries = append(entries, model.SupervisorExpertiseEntry{
				SupervisorID: id,
				Program:      program,
				TopicID:      topicID,
				Level:        level,
			})
		}

		if !lineOK {
			continue
		}

		seen[id] = true
		out = append(out, model.Supervisor{ID: id, Capacity: capacity, Entries: entries})
	}

	return out, errs
}
