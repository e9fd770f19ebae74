package catalog_test

import (
	"testing"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(sup, prog, topic string, lvl model.Level) model.SupervisorExpertiseEntry {
	return model.SupervisorExpertiseEntry{
		SupervisorID: model.SupervisorID(sup),
		Program:      model.Program(prog),
		TopicID:      model.TopicID(topic),
		Level:        lvl,
	}
}

func TestBuild_SingleOwner(t *testing.T) {
	sups := []model.Supervisor{
		{ID: "V1", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V1", "BDBA", "T1", model.Expert)}},
	}
	c := catalog.Build(sups)

	owner, ok := c.Owner("T1", "BDBA")
	require.True(t, ok)
	assert.Equal(t, model.SupervisorID("V1"), owner)
	assert.Equal(t, model.Expert, c.OwnerLevel("T1", "BDBA"))
}

func TestBuild_OwnerResolvedPerProgram(t *testing.T) {
	sups := []model.Supervisor{
		{ID: "V1", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V1", "BDBA", "T1", model.Expert)}},
		{ID: "V2", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V2", "BCSAI", "T1", model.Beginner)}},
	}
	c := catalog.Build(sups)

	owner, ok := c.Owner("T1", "BDBA")
	require.True(t, ok)
	assert.Equal(t, model.SupervisorID("V1"), owner)

	owner2, ok2 := c.Owner("T1", "BCSAI")
	require.True(t, ok2)
	assert.Equal(t, model.SupervisorID("V2"), owner2)
}

func TestBuild_TiedExpertise_LexicographicTiebreak(t *testing.T) {
	sups := []model.Supervisor{
		{ID: "V2", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V2", "BDBA", "T1", model.Expert)}},
		{ID: "V1", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V1", "BDBA", "T1", model.Expert)}},
	}
	c := catalog.Build(sups)

	owner, ok := c.Owner("T1", "BDBA")
	require.True(t, ok)
	assert.Equal(t, model.SupervisorID("V1"), owner)
}

func TestBuild_NoOwner(t *testing.T) {
	sups := []model.Supervisor{
		{ID: "V1", Capacity: 1, Entries: []model.SupervisorExpertiseEntry{entry("V1", "BDBA", "T1", model.Expert)}},
	}
	c := catalog.Build(sups)

	_, ok := c.Owner("T1", "BCSAI")
	assert.False(t, ok)
	assert.False(t, c.Feasible("T1", "BCSAI"))
}

func TestTopicsOf(t *testing.T) {
	sups := []model.Supervisor{
		{ID: "V1", Capacity: 2, Entries: []model.SupervisorExpertiseEntry{
			entry("V1", "BDBA", "T2", model.Advanced),
			entry("V1", "BDBA", "T1", model.Expert),
		}},
	}
	c := catalog.Build(sups)

	combos := c.TopicsOf("V1")
	require.Len(t, combos, 2)
	assert.Equal(t, model.TopicID("T1"), combos[0].Topic)
	assert.Equal(t, model.TopicID("T2"), combos[1].Topic)
}
