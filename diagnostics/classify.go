package diagnostics

import (
	"sort"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/model"
)

// UnmatchedReason is the primary reason diagnostics assigns an unmatched
// student (spec.md §4.D).
type UnmatchedReason int

const (
	// ReasonNoSupervisorForCombination: every preference's (topic, program)
	// has no owner at all.
	ReasonNoSupervisorForCombination UnmatchedReason = iota
	// ReasonAllSupervisorsAtCapacity: every feasible preference's owner
	// ended the run at full capacity.
	ReasonAllSupervisorsAtCapacity
	// ReasonMixed: neither of the above holds uniformly; PerPreference
	// carries the individual reason for each preference.
	ReasonMixed
)

// String renders the reason for logs and reports.
func (r UnmatchedReason) String() string {
	switch r {
	case ReasonNoSupervisorForCombination:
		return "NoSupervisorForCombination"
	case ReasonAllSupervisorsAtCapacity:
		return "AllSupervisorsAtCapacity"
	case ReasonMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// PreferenceOutcome is why a single preference did not result in a match.
type PreferenceOutcome struct {
	Topic   model.TopicID
	NoOwner bool // true iff (Topic, student's Program) has no owner
}

// Classification is the full explanation diagnostics attaches to one
// unmatched student.
type Classification struct {
	Student       model.StudentID
	Reason        UnmatchedReason
	PerPreference []PreferenceOutcome
}

// ClassifyUnmatched walks every unmatched student's preference list and
// assigns the primary reason spec.md §4.D describes. Matched students are
// skipped. Results are sorted by Student for deterministic reporting.
func ClassifyUnmatched(in *grammar.Input, cat *catalog.Catalog, res *matching.Result) []Classification {
	students := make(map[model.StudentID]model.Student, len(in.Students))
	for _, s := range in.Students {
		students[s.ID] = s
	}

	capacity := make(map[model.SupervisorID]int, len(in.Supervisors))
	for _, sup := range in.Supervisors {
		capacity[sup.ID] = sup.Capacity
	}

	var out []Classification

	for _, sid := range res.UnmatchedStudents() {
		s := students[sid]

		perPref := make([]PreferenceOutcome, len(s.Preferences))
		allNoOwner := true
		allAtCapacity := true
		sawFeasible := false

		for i, topic := range s.Preferences {
			owner, ok := cat.Owner(topic, s.Program)
			if !ok {
				perPref[i] = PreferenceOutcome{Topic: topic, NoOwner: true}
				continue
			}

			allNoOwner = false
			sawFeasible = true
			perPref[i] = PreferenceOutcome{Topic: topic, NoOwner: false}

			if res.Load[owner] < capacity[owner] {
				allAtCapacity = false
			}
		}

		reason := ReasonMixed
		switch {
		case allNoOwner:
			reason = ReasonNoSupervisorForCombination
		case sawFeasible && allAtCapacity:
			reason = ReasonAllSupervisorsAtCapacity
		}

		out = append(out, Classification{Student: sid, Reason: reason, PerPreference: perPref})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Student < out[j].Student })

	return out
}
