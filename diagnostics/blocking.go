package diagnostics

import (
	"sort"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/model"
)

// BlockingPair is a (student, topic) candidate that would rationally defect
// from the current matching (spec.md §4.D).
type BlockingPair struct {
	Student model.StudentID
	Topic   model.TopicID
}

// preferenceKey is the same lexicographic (level, rank, id) tuple the
// matching engine derives a supervisor's preference order from (spec.md
// §4.C); "smaller is better". It is recomputed here independently of the
// matching package, since diagnostics only ever sees the finished Result.
type preferenceKey struct {
	negLevel int
	rank     int
	id       model.StudentID
}

func keyFor(sid model.StudentID, rank int, level model.Level) preferenceKey {
	return preferenceKey{negLevel: -int(level), rank: rank, id: sid}
}

func (a preferenceKey) less(b preferenceKey) bool {
	if a.negLevel != b.negLevel {
		return a.negLevel < b.negLevel
	}
	if a.rank != b.rank {
		return a.rank < b.rank
	}

	return a.id < b.id
}

// FindBlockingPairs enumerates every blocking pair in res, scanning each
// student's preference prefix up to (but excluding) their current
// assignment, or the full list if they are unmatched. An empty result means
// the matching is stable (spec.md §4.D, P5).
//
// Results are sorted by (Student, Topic) for deterministic reporting; the
// definition itself has no inherent order.
func FindBlockingPairs(in *grammar.Input, cat *catalog.Catalog, res *matching.Result) []BlockingPair {
	capacity := make(map[model.SupervisorID]int, len(in.Supervisors))
	for _, sup := range in.Supervisors {
		capacity[sup.ID] = sup.Capacity
	}

	students := make(map[model.StudentID]model.Student, len(in.Students))
	for _, s := range in.Students {
		students[s.ID] = s
	}

	// heldBy groups every currently-assigned student under the supervisor
	// that owns their assigned topic, so blocks() can scan one owner's
	// current holders directly.
	heldBy := make(map[model.SupervisorID][]model.StudentID)
	for sid, topic := range res.Assignment {
		owner, ok := cat.Owner(topic, students[sid].Program)
		if !ok {
			continue // I3 guarantees this cannot happen for a valid Result
		}
		heldBy[owner] = append(heldBy[owner], sid)
	}

	var out []BlockingPair

	for _, s := range in.Students {
		limit := len(s.Preferences)
		if topic, ok := res.Assignment[s.ID]; ok {
			limit = s.Rank(topic)
		}

		for i := 0; i < limit; i++ {
			topic := s.Preferences[i]

			owner, ok := cat.Owner(topic, s.Program)
			if !ok {
				continue
			}

			if blocks(s, topic, owner, cat, res, students, capacity, heldBy) {
				out = append(out, BlockingPair{Student: s.ID, Topic: topic})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Student != out[j].Student {
			return out[i].Student < out[j].Student
		}
		return out[i].Topic < out[j].Topic
	})

	return out
}

// blocks implements spec.md §4.D condition 3: owner v has spare capacity, or
// s is strictly preferred by v's derived order over some student it
// currently holds.
func blocks(
	s model.Student,
	topic model.TopicID,
	owner model.SupervisorID,
	cat *catalog.Catalog,
	res *matching.Result,
	students map[model.StudentID]model.Student,
	capacity map[model.SupervisorID]int,
	heldBy map[model.SupervisorID][]model.StudentID,
) bool {
	if res.Load[owner] < capacity[owner] {
		return true
	}

	sKey := keyFor(s.ID, s.Rank(topic), cat.OwnerLevel(topic, s.Program))

	for _, heldID := range heldBy[owner] {
		heldStudent := students[heldID]
		heldTopic := res.Assignment[heldID]
		heldKey := keyFor(heldID, heldStudent.Rank(heldTopic), cat.OwnerLevel(heldTopic, heldStudent.Program))

		if sKey.less(heldKey) {
			return true
		}
	}

	return false
}
