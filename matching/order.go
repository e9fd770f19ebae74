package matching

import "github.com/dkowalik/spamatch/model"

// candidateKey is the lexicographic tuple spec.md §4.C derives a
// supervisor's preference order from. Comparing two candidateKeys with the
// ordinary "smaller tuple wins" rule yields "better is smaller": a lower
// negLevel (i.e. a higher declared expertise Level) wins first, then a
// lower Rank (a more-wanted topic), then a lexicographically smaller
// StudentID.
//
// This is computed on demand rather than cached, per spec.md §9's
// "Eviction order" design note: the topic and rank of each held student
// change across rounds, so a precomputed ranking would go stale.
type candidateKey struct {
	negLevel int
	rank     int
	id       model.StudentID
}

// candidateKeyFor builds the comparison key for student sid currently
// holding (or proposing) topic, given the Level the owning supervisor
// declared for (topic, program).
func candidateKeyFor(sid model.StudentID, rank int, level model.Level) candidateKey {
	return candidateKey{negLevel: -int(level), rank: rank, id: sid}
}

// less reports whether a is strictly preferred by the supervisor over b
// (a is "better").
func (a candidateKey) less(b candidateKey) bool {
	if a.negLevel != b.negLevel {
		return a.negLevel < b.negLevel
	}
	if a.rank != b.rank {
		return a.rank < b.rank
	}

	return a.id < b.id
}

// worstOf returns the index into keys of the least-preferred candidate.
// keys must be non-empty.
func worstOf(keys []candidateKey) int {
	worst := 0
	for i := 1; i < len(keys); i++ {
		if keys[worst].less(keys[i]) {
			worst = i
		}
	}

	return worst
}
