package matching

import (
	"fmt"
	"sort"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/model"
)

// Option configures Run.
type Option func(*options)

type options struct {
	allowReproposalOnEviction bool
}

// WithAllowReproposalOnEviction selects the non-default mode flagged by
// spec.md §9 Q1: when true, an evicted student's Cursor is rewound to the
// index of the topic they lost, so they compete for it again once capacity
// frees up. The spec's fixed default (false) never rewinds the cursor: a
// rejected or evicted preference is used exactly once.
func WithAllowReproposalOnEviction(allow bool) Option {
	return func(o *options) { o.allowReproposalOnEviction = allow }
}

// engine owns all mutable matching state for the duration of one session
// (spec.md §5: "the Matching Engine has exclusive ownership of Assignment,
// Load, Cursor, and StudentStatus").
type engine struct {
	cat  *catalog.Catalog
	opts options

	students map[model.StudentID]model.Student
	order    []model.StudentID // all student ids, ascending, fixed for the session

	capacity map[model.SupervisorID]int

	assignment map[model.StudentID]model.TopicID
	load       map[model.SupervisorID]int
	cursor     map[model.StudentID]int
	status     map[model.StudentID]StudentStatus
	held       map[model.SupervisorID]map[model.StudentID]struct{}

	diagnostics []DiagnosticEvent
	roundLog    []RoundLogEntry
}

// Run executes the round-based proposal procedure to a fixed point and
// returns the resulting Result. It never returns an error: see doc.go.
func Run(in *grammar.Input, cat *catalog.Catalog, opts ...Option) *Result {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := newEngine(in, cat, cfg)
	e.runToFixedPoint()

	return e.result()
}

func newEngine(in *grammar.Input, cat *catalog.Catalog, cfg options) *engine {
	e := &engine{
		cat:        cat,
		opts:       cfg,
		students:   make(map[model.StudentID]model.Student, len(in.Students)),
		capacity:   make(map[model.SupervisorID]int, len(in.Supervisors)),
		assignment: make(map[model.StudentID]model.TopicID, len(in.Students)),
		load:       make(map[model.SupervisorID]int, len(in.Supervisors)),
		cursor:     make(map[model.StudentID]int, len(in.Students)),
		status:     make(map[model.StudentID]StudentStatus, len(in.Students)),
		held:       make(map[model.SupervisorID]map[model.StudentID]struct{}, len(in.Supervisors)),
	}

	for _, s := range in.Students {
		e.students[s.ID] = s
		e.order = append(e.order, s.ID)
		e.cursor[s.ID] = 0
		e.status[s.ID] = StatusUnproposed
	}
	sort.Slice(e.order, func(i, j int) bool { return e.order[i] < e.order[j] })

	for _, sup := range in.Supervisors {
		e.capacity[sup.ID] = sup.Capacity
		e.load[sup.ID] = 0
		e.held[sup.ID] = make(map[model.StudentID]struct{}, sup.Capacity)
	}

	return e
}

// pendingSnapshot returns, in ascending order, every student currently in
// StatusUnproposed — the set one outer-loop round processes (spec.md §4.C).
func (e *engine) pendingSnapshot() []model.StudentID {
	out := make([]model.StudentID, 0, len(e.order))
	for _, id := range e.order {
		if e.status[id] == StatusUnproposed {
			out = append(out, id)
		}
	}

	return out
}

func (e *engine) runToFixedPoint() {
	round := 0
	for {
		pending := e.pendingSnapshot()
		if len(pending) == 0 {
			break
		}
		round++

		var newlyMatched, evictions int
		for _, sid := range pending {
			matchedNow, evictedNow := e.proposeOne(sid, round)
			if matchedNow {
				newlyMatched++
			}
			evictions += evictedNow
		}

		e.roundLog = append(e.roundLog, RoundLogEntry{
			RoundNumber:       round,
			NewlyMatched:      newlyMatched,
			CumulativeMatched: e.countMatched(),
			Evictions:         evictions,
		})

		e.checkInvariants()
	}
}

// proposeOne runs the per-student inner step for sid for the remainder of
// round, looping internally past infeasible preferences (spec.md §4.C step
// 3's "go to step 1"). It returns whether sid became newly matched this
// call, and how many evictions it caused (0 or 1).
func (e *engine) proposeOne(sid model.StudentID, round int) (matchedNow bool, evicted int) {
	student := e.students[sid]

	for {
		k := e.cursor[sid]
		if k == len(student.Preferences) {
			e.status[sid] = StatusExhausted
			return matchedNow, evicted
		}

		topic := student.Preferences[k]
		e.cursor[sid] = k + 1

		owner, ok := e.cat.Owner(topic, student.Program)
		if !ok {
			e.diagnostics = append(e.diagnostics, DiagnosticEvent{
				Kind:    NoSupervisorForCombination,
				Student: sid,
				Topic:   topic,
				Round:   round,
			})
			continue // step 3's "go to step 1": same round, next preference
		}

		if e.load[owner] < e.capacity[owner] {
			e.accept(sid, topic, owner)
			return true, evicted
		}

		worstID, lostTopic, accepted := e.applyEviction(sid, topic, owner)
		if !accepted {
			e.diagnostics = append(e.diagnostics, DiagnosticEvent{
				Kind:    AllSupervisorsAtCapacity,
				Student: sid,
				Topic:   topic,
				Round:   round,
			})
			return matchedNow, evicted
		}

		e.diagnostics = append(e.diagnostics, DiagnosticEvent{
			Kind:    EvictedInRound,
			Student: worstID,
			Topic:   lostTopic, // the topic worstID held until sid displaced it
			Round:   round,
		})

		return true, evicted + 1
	}
}

func (e *engine) accept(sid model.StudentID, topic model.TopicID, owner model.SupervisorID) {
	e.assignment[sid] = topic
	e.load[owner]++
	e.status[sid] = StatusMatched
	e.held[owner][sid] = struct{}{}
}

// applyEviction implements spec.md §4.C step 5. It returns the id of the
// displaced student, the topic that student lost, and accepted=true if sid
// was accepted in their place; accepted=false means sid itself was the worst
// candidate and was rejected, leaving all state untouched.
func (e *engine) applyEviction(sid model.StudentID, topic model.TopicID, owner model.SupervisorID) (worstID model.StudentID, lostTopic model.TopicID, accepted bool) {
	held := e.held[owner]

	ids := make([]model.StudentID, 0, len(held)+1)
	keys := make([]candidateKey, 0, len(held)+1)

	for heldID := range held {
		heldStudent := e.students[heldID]
		heldTopic := e.assignment[heldID]
		level := e.cat.OwnerLevel(heldTopic, heldStudent.Program)
		ids = append(ids, heldID)
		keys = append(keys, candidateKeyFor(heldID, heldStudent.Rank(heldTopic), level))
	}

	proposer := e.students[sid]
	proposerLevel := e.cat.OwnerLevel(topic, proposer.Program)
	ids = append(ids, sid)
	keys = append(keys, candidateKeyFor(sid, proposer.Rank(topic), proposerLevel))

	idx := worstOf(keys)
	worstID = ids[idx]

	if worstID == sid {
		return worstID, "", false
	}

	// Evict worstID, then insert sid in its place.
	lostTopic = e.assignment[worstID]
	delete(held, worstID)
	delete(e.assignment, worstID)
	e.load[owner]--
	e.status[worstID] = StatusUnproposed
	if e.opts.allowReproposalOnEviction {
		if lostRank := e.students[worstID].Rank(lostTopic); lostRank >= 0 {
			e.cursor[worstID] = lostRank
		}
	}

	e.accept(sid, topic, owner)

	return worstID, lostTopic, true
}

func (e *engine) countMatched() int {
	n := 0
	for _, st := range e.status {
		if st == StatusMatched {
			n++
		}
	}

	return n
}

func (e *engine) result() *Result {
	return &Result{
		Assignment:  e.assignment,
		Load:        e.load,
		Cursor:      e.cursor,
		Status:      e.status,
		Diagnostics: e.diagnostics,
		RoundLog:    e.roundLog,
	}
}

// checkInvariants asserts I1, I2, I4, I5 and I6 after every round boundary
// (spec.md §3). I3 is implied by construction (accept/evict always keep
// held[owner] and assignment/load in lockstep) and is not re-derived here.
// Any violation is a programmer error: it panics rather than
// returning an error (spec.md §4.C, "Failure semantics").
func (e *engine) checkInvariants() {
	for sid, topic := range e.assignment {
		student := e.students[sid]
		assertInvariant(student.Rank(topic) >= 0, "I1 violated: %s assigned to %s which is not in its preferences", sid, topic)
	}

	for sup, load := range e.load {
		assertInvariant(load <= e.capacity[sup], "I2 violated: supervisor %s load %d exceeds capacity %d", sup, load, e.capacity[sup])
		assertInvariant(load == len(e.held[sup]), "I2/I4 bookkeeping mismatch for supervisor %s: load=%d held=%d", sup, load, len(e.held[sup]))
	}

	seen := make(map[model.StudentID]bool, len(e.assignment))
	for sid := range e.assignment {
		assertInvariant(!seen[sid], "I4 violated: %s has more than one Assignment entry", sid)
		seen[sid] = true
	}

	for sid, student := range e.students {
		assertInvariant(e.cursor[sid] <= len(student.Preferences), "I5 violated: %s cursor %d exceeds %d preferences", sid, e.cursor[sid], len(student.Preferences))
		if e.status[sid] == StatusExhausted {
			assertInvariant(e.cursor[sid] == len(student.Preferences), "I6 violated: %s exhausted with cursor %d != %d", sid, e.cursor[sid], len(student.Preferences))
			_, matched := e.assignment[sid]
			assertInvariant(!matched, "I6 violated: exhausted student %s holds an assignment", sid)
		}
	}
}

func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("spamatch/matching: invariant violated: "+format, args...))
	}
}
