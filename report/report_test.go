package report_test

import (
	"testing"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveTopics = "T1: A\nT2: A\nT3: A\nT4: A\nT5: A\n"

func TestBuild_TrivialMatch(t *testing.T) {
	in, err := grammar.Parse("BDBA1: T1, T2, T3, T4, T5\n", fiveTopics, "V1: 1, BDBA:T1:Expert\n")
	require.NoError(t, err)
	cat := catalog.Build(in.Supervisors)
	res := matching.Run(in, cat)

	rep := report.Build(in, cat, res)

	require.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Assignments, 1)
	assert.Equal(t, "T1", string(rep.Assignments[0].Topic))
	assert.Equal(t, "V1", string(rep.Assignments[0].Supervisor))
	assert.Equal(t, 1, rep.Assignments[0].Rank)
	assert.Equal(t, 1.0, rep.Metrics.MatchRate)
	assert.Empty(t, rep.BlockingPairs)

	out, jerr := rep.ToJSON()
	require.NoError(t, jerr)
	assert.Contains(t, string(out), "run_id")

	yout, yerr := rep.ToYAML()
	require.NoError(t, yerr)
	assert.Contains(t, string(yout), "run_id")
}

func TestBuild_UnmatchedStudentRowIsBlank(t *testing.T) {
	in, err := grammar.Parse("S1: T1, T2, T3, T4, T5\n", fiveTopics, "V1: 1, BCSAI:T1:Expert\n")
	require.NoError(t, err)
	cat := catalog.Build(in.Supervisors)
	res := matching.Run(in, cat)

	rep := report.Build(in, cat, res)

	require.Len(t, rep.Assignments, 1)
	row := rep.Assignments[0]
	assert.Equal(t, "", string(row.Topic))
	assert.Equal(t, "", string(row.Supervisor))
	assert.Equal(t, 0, row.Rank)
	require.Len(t, rep.Unmatched, 1)
}

func TestBuild_TwoRunsHaveDistinctRunIDs(t *testing.T) {
	in, err := grammar.Parse("BDBA1: T1, T2, T3, T4, T5\n", fiveTopics, "V1: 1, BDBA:T1:Expert\n")
	require.NoError(t, err)
	cat := catalog.Build(in.Supervisors)

	r1 := report.Build(in, cat, matching.Run(in, cat))
	r2 := report.Build(in, cat, matching.Run(in, cat))

	assert.NotEqual(t, r1.RunID, r2.RunID)
}
