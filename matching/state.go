package matching

import (
	"sort"

	"github.com/dkowalik/spamatch/model"
)

// StudentStatus is a Student's matching lifecycle state (spec.md §3).
type StudentStatus int

const (
	// StatusUnproposed means s is neither matched nor exhausted: either it
	// has never proposed, or a previous eviction returned it to this state.
	StatusUnproposed StudentStatus = iota
	// StatusMatched means s currently holds an Assignment.
	StatusMatched
	// StatusExhausted means s's Cursor has reached the end of Preferences
	// with no held Assignment; s will never be matched.
	StatusExhausted
)

// String renders the status for logs and reports.
func (s StudentStatus) String() string {
	switch s {
	case StatusUnproposed:
		return "Unproposed"
	case StatusMatched:
		return "Matched"
	case StatusExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// DiagnosticKind classifies a DiagnosticEvent (spec.md §7).
type DiagnosticKind int

const (
	// NoSupervisorForCombination: the (topic, program) combination a
	// student proposed to has no owner.
	NoSupervisorForCombination DiagnosticKind = iota
	// AllSupervisorsAtCapacity: the owner of a proposed-to topic was at
	// capacity and the proposer was not preferred over any held student.
	AllSupervisorsAtCapacity
	// EvictedInRound: a previously-held student was displaced by a
	// preferred proposer.
	EvictedInRound
)

// String renders the kind for logs and reports.
func (k DiagnosticKind) String() string {
	switch k {
	case NoSupervisorForCombination:
		return "NoSupervisorForCombination"
	case AllSupervisorsAtCapacity:
		return "AllSupervisorsAtCapacity"
	case EvictedInRound:
		return "EvictedInRound"
	default:
		return "Unknown"
	}
}

// DiagnosticEvent is one non-fatal event emitted by the engine while
// processing a single student's proposal (spec.md §7). Round is always
// populated (1-based), even though spec.md's prose only names it for
// EvictedInRound; carrying it on every event costs nothing and aids replay.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Student model.StudentID
	Topic   model.TopicID
	Round   int
}

// RoundLogEntry is one outer-loop round's summary (spec.md §6.2).
type RoundLogEntry struct {
	RoundNumber       int
	NewlyMatched      int
	CumulativeMatched int
	Evictions         int
}

// Result is the complete, immutable outcome of one matching session
// (spec.md §3, §6.2). All maps are keyed by the identifiers present in the
// grammar.Input the Result was built from.
type Result struct {
	Assignment  map[model.StudentID]model.TopicID
	Load        map[model.SupervisorID]int
	Cursor      map[model.StudentID]int
	Status      map[model.StudentID]StudentStatus
	Diagnostics []DiagnosticEvent
	RoundLog    []RoundLogEntry
}

// MatchedStudents returns every StudentID with StatusMatched, in ascending
// order.
func (r *Result) MatchedStudents() []model.StudentID {
	out := make([]model.StudentID, 0, len(r.Assignment))
	for id, st := range r.Status {
		if st == StatusMatched {
			out = append(out, id)
		}
	}
	sortStudentIDs(out)

	return out
}

// UnmatchedStudents returns every StudentID without StatusMatched
// (Unproposed or Exhausted — by the time Run returns, only Exhausted
// remains per the termination condition), in ascending order.
func (r *Result) UnmatchedStudents() []model.StudentID {
	out := make([]model.StudentID, 0)
	for id, st := range r.Status {
		if st != StatusMatched {
			out = append(out, id)
		}
	}
	sortStudentIDs(out)

	return out
}

func sortStudentIDs(ids []model.StudentID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
