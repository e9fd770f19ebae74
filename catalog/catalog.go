package catalog

import (
	"sort"

	"github.com/dkowalik/spamatch/model"
)

// key identifies one (topic, program) combination.
type key struct {
	Topic   model.TopicID
	Program model.Program
}

// ownerRecord is the winning entry for a key, kept around so Catalog can
// also answer "what level did the owner declare" for the matching engine's
// derived supervisor preference order (spec.md §4.C).
type ownerRecord struct {
	Supervisor model.SupervisorID
	Level      model.Level
}

// Catalog answers owner(topic, program) queries and exposes, for
// diagnostics, which (topic, program) pairs each supervisor owns.
//
// Catalog is built once from a fixed set of supervisors and is immutable
// thereafter; it holds no reference to mutable matching state.
type Catalog struct {
	owners     map[key]ownerRecord
	bySupervis map[model.SupervisorID][]key
}

// Build derives the Catalog from supervisors. Deterministic: for a fixed
// input slice (in any order), the result is identical, because tie-breaking
// only ever compares Level then SupervisorID, never insertion order.
func Build(supervisors []model.Supervisor) *Catalog {
	c := &Catalog{
		owners:     make(map[key]ownerRecord),
		bySupervis: make(map[model.SupervisorID][]key),
	}

	// Collect every candidate entry per key first, so tie-breaking can
	// compare the full candidate set rather than depending on visit order.
	candidates := make(map[key][]model.SupervisorExpertiseEntry)
	for _, sup := range supervisors {
		for _, e := range sup.Entries {
			k := key{Topic: e.TopicID, Program: e.Program}
			candidates[k] = append(candidates[k], e)
		}
	}

	for k, entries := range candidates {
		best := entries[0]
		for _, e := range entries[1:] {
			if e.Level > best.Level {
				best = e
				continue
			}
			if e.Level == best.Level && e.SupervisorID < best.SupervisorID {
				best = e
			}
		}

		c.owners[k] = ownerRecord{Supervisor: best.SupervisorID, Level: best.Level}
		c.bySupervis[best.SupervisorID] = append(c.bySupervis[best.SupervisorID], k)
	}

	for sid := range c.bySupervis {
		sort.Slice(c.bySupervis[sid], func(i, j int) bool {
			a, b := c.bySupervis[sid][i], c.bySupervis[sid][j]
			if a.Topic != b.Topic {
				return a.Topic < b.Topic
			}
			return a.Program < b.Program
		})
	}

	return c
}

// Owner returns the SupervisorID that owns (topic, program), and ok=false
// if no supervisor declared that combination ("no owner", spec.md §4.B).
func (c *Catalog) Owner(topic model.TopicID, program model.Program) (model.SupervisorID, bool) {
	rec, ok := c.owners[key{Topic: topic, Program: program}]
	return rec.Supervisor, ok
}

// OwnerLevel returns the expertise Level the owning supervisor declared for
// (topic, program). It panics if there is no owner; callers must check
// Owner first — this mirrors the derived supervisor order's requirement
// that the level only be consulted for feasible preferences.
func (c *Catalog) OwnerLevel(topic model.TopicID, program model.Program) model.Level {
	rec, ok := c.owners[key{Topic: topic, Program: program}]
	if !ok {
		panic("catalog: OwnerLevel called on a (topic, program) pair with no owner")
	}

	return rec.Level
}

// TopicCombo pairs a TopicID with the Program it is owned for, as returned
// by TopicsOf.
type TopicCombo struct {
	Topic   model.TopicID
	Program model.Program
}

// TopicsOf returns every (topic, program) combination supervisor owns, in a
// deterministic (topic, program) order, for diagnostics.
func (c *Catalog) TopicsOf(supervisor model.SupervisorID) []TopicCombo {
	keys := c.bySupervis[supervisor]
	out := make([]TopicCombo, len(keys))
	for i, k := range keys {
		out[i] = TopicCombo{Topic: k.Topic, Program: k.Program}
	}

	return out
}

// Feasible reports whether a Student's preference has an owner for their
// Program (spec.md §4.B, "feasible preference").
func (c *Catalog) Feasible(topic model.TopicID, program model.Program) bool {
	_, ok := c.Owner(topic, program)
	return ok
}
