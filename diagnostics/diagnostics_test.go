package diagnostics_test

import (
	"testing"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/diagnostics"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveTopics = "T1: A\nT2: A\nT3: A\nT4: A\nT5: A\n"

func parseAndRun(t *testing.T, students, supervisors string, opts ...matching.Option) (*grammar.Input, *catalog.Catalog, *matching.Result) {
	t.Helper()
	in, err := grammar.Parse(students, fiveTopics, supervisors)
	require.NoError(t, err)
	cat := catalog.Build(in.Supervisors)
	res := matching.Run(in, cat, opts...)

	return in, cat, res
}

func TestFindBlockingPairs_StableHasNone(t *testing.T) {
	in, cat, res := parseAndRun(t, "BDBA1: T1, T2, T3, T4, T5\n", "V1: 1, BDBA:T1:Expert\n")

	pairs := diagnostics.FindBlockingPairs(in, cat, res)
	assert.Empty(t, pairs)
}

func TestFindBlockingPairs_CapacitySaturationIsStable(t *testing.T) {
	students := "BDBA1: T1\nBDBA2: T1\nBDBA3: T1\n"
	sup := "V1: 2, BDBA:T1:Expert, BDBA:T2:Expert\n"

	in, cat, res := parseAndRun(t, students, sup)

	// The engine's own eviction rule already drives the matching to a fixed
	// point where no rejected proposer is preferred to any current holder;
	// the result must be stable.
	pairs := diagnostics.FindBlockingPairs(in, cat, res)
	assert.Empty(t, pairs)
}

func TestClassifyUnmatched_NoSupervisorForCombination(t *testing.T) {
	in, cat, res := parseAndRun(t, "S1: T1, T2, T3, T4, T5\n", "V1: 1, BCSAI:T1:Expert\n")

	classes := diagnostics.ClassifyUnmatched(in, cat, res)
	require.Len(t, classes, 1)
	assert.Equal(t, diagnostics.ReasonNoSupervisorForCombination, classes[0].Reason)
	assert.Len(t, classes[0].PerPreference, 5)
	for _, p := range classes[0].PerPreference {
		assert.True(t, p.NoOwner)
	}
}

func TestClassifyUnmatched_AllSupervisorsAtCapacity(t *testing.T) {
	students := "BDBA1: T1\nBDBA2: T1\nBDBA3: T1\n"
	sup := "V1: 2, BDBA:T1:Expert, BDBA:T2:Expert\n"

	in, cat, res := parseAndRun(t, students, sup)

	classes := diagnostics.ClassifyUnmatched(in, cat, res)
	require.Len(t, classes, 1)
	assert.Equal(t, diagnostics.ReasonAllSupervisorsAtCapacity, classes[0].Reason)
}

func TestClassifyUnmatched_NoOwnerPreferencesIgnoredForCapacityReason(t *testing.T) {
	// BCSAI1's first preference has an owner at capacity, second has no
	// owner at all: its only feasible preference's owner is full, so the
	// capacity reason applies.
	students := "BDBA1: T1\nBCSAI1: T1, T2\n"
	sup := "V1: 1, BDBA:T1:Expert, BCSAI:T1:Beginner\n"

	in, cat, res := parseAndRun(t, students, sup)

	classes := diagnostics.ClassifyUnmatched(in, cat, res)
	require.Len(t, classes, 1)
	assert.Equal(t, diagnostics.ReasonAllSupervisorsAtCapacity, classes[0].Reason)
	require.Len(t, classes[0].PerPreference, 2)
	assert.False(t, classes[0].PerPreference[0].NoOwner)
	assert.True(t, classes[0].PerPreference[1].NoOwner)
}

func TestClassifyUnmatched_SkipsMatchedStudents(t *testing.T) {
	in, cat, res := parseAndRun(t, "BDBA1: T1, T2, T3, T4, T5\n", "V1: 1, BDBA:T1:Expert\n")

	classes := diagnostics.ClassifyUnmatched(in, cat, res)
	assert.Empty(t, classes)
}
