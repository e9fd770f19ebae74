package grammar_test

import (
	"errors"
	"testing"

	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	topicsSrc = "T1: Area A\nT2: Area A\nT3: Area A\nT4: Area A\nT5: Area A\n"
	supSrc    = "V1: 1, BDBA:T1:Expert\n"
)

func TestParse_TrivialMatchInstance(t *testing.T) {
	studentsSrc := "S1: T1, T2, T3, T4, T5\n"

	in, err := grammar.Parse(studentsSrc, topicsSrc, supSrc)
	require.NoError(t, err)
	require.Len(t, in.Students, 1)
	assert.Equal(t, model.StudentID("S1"), in.Students[0].ID)
	assert.Len(t, in.Topics, 5)
	require.Len(t, in.Supervisors, 1)
	assert.Equal(t, 1, in.Supervisors[0].Capacity)
}

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	studentsSrc := "# a comment\n\nS1: T1, T2, T3, T4, T5\n   \n# trailing\n"
	in, err := grammar.Parse(studentsSrc, topicsSrc, supSrc)
	require.NoError(t, err)
	require.Len(t, in.Students, 1)
}

func TestParse_UnknownTopicInPreferences(t *testing.T) {
	studentsSrc := "S1: T1, T2, T3, T4, T9\n"
	_, err := grammar.Parse(studentsSrc, topicsSrc, supSrc)
	require.Error(t, err)

	var verrs grammar.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.True(t, verrs.HasErrors())
	assert.ErrorIs(t, verrs[0], grammar.ErrUnknownTopic)
}

func TestParse_CapacityOutOfRange(t *testing.T) {
	for _, cap := range []string{"0", "11"} {
		sup := "V1: " + cap + ", BDBA:T1:Expert\n"
		_, err := grammar.Parse("S1: T1\n", topicsSrc, sup)
		require.Error(t, err)

		var verrs grammar.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.ErrorIs(t, verrs[0], grammar.ErrCapacityOutOfRange)
	}
}

func TestParse_DuplicatePreference(t *testing.T) {
	studentsSrc := "S1: T1, T1, T2\n"
	_, err := grammar.Parse(studentsSrc, topicsSrc, supSrc)
	require.Error(t, err)

	var verrs grammar.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.ErrorIs(t, verrs[0], grammar.ErrDuplicatePreference)
}

func TestParse_DuplicateSupervisorEntry(t *testing.T) {
	sup := "V1: 2, BDBA:T1:Expert, BDBA:T1:Advanced\n"
	_, err := grammar.Parse("S1: T1\n", topicsSrc, sup)
	require.Error(t, err)

	var verrs grammar.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.ErrorIs(t, verrs[0], grammar.ErrDuplicateEntry)
}

func TestParse_StrictPreferenceLength(t *testing.T) {
	studentsSrc := "S1: T1, T2\n"
	_, err := grammar.Parse(studentsSrc, topicsSrc, supSrc, grammar.WithStrictPreferenceLength(true))
	require.Error(t, err)

	var verrs grammar.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.ErrorIs(t, verrs[0], grammar.ErrPreferenceCountOutOfRange)
}

func TestParse_MissingColon(t *testing.T) {
	_, err := grammar.Parse("S1 T1\n", topicsSrc, supSrc)
	require.Error(t, err)

	var verrs grammar.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.ErrorIs(t, verrs[0], grammar.ErrMissingColon)
}

func TestParse_BachelorTagNormalization(t *testing.T) {
	sup := "V1: 1, BBA_BDBA:T1:Expert\n"
	in, err := grammar.Parse("S1: T1\n", topicsSrc, sup)
	require.NoError(t, err)
	require.Len(t, in.Supervisors, 1)
	assert.Equal(t, model.Program("BBA+BDBA"), in.Supervisors[0].Entries[0].Program)
}

func TestProgramInferrer_TableOverride(t *testing.T) {
	infer := grammar.PrefixTableInferrer{Table: map[string]model.Program{"S": "BDBA"}}
	in, err := grammar.Parse("S1: T1\n", topicsSrc, supSrc, grammar.WithProgramInferrer(infer))
	require.NoError(t, err)
	require.Len(t, in.Students, 1)
	assert.Equal(t, model.Program("BDBA"), in.Students[0].Program)
}

func TestProgramInferrer_DefaultFallback(t *testing.T) {
	infer := grammar.NewDefaultProgramInferrer()
	assert.Equal(t, model.Program("BDBA"), infer.Infer("BDBA1"))
	assert.Equal(t, model.Program("BBA+BDBA"), infer.Infer("BBA_BDBA1"))
}
