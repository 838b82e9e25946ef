package ppssp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectJSONShape(t *testing.T) {
	p := newProject(3, 2, []float64{4, 6}, []float64{7, 8}, 10, 15)
	p.PrerequisiteList.Add(2)
	p.SuccessorList.Add(5)
	p.SuccessorList.Add(4)
	p.ExclusionList.Add(9)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(3), decoded["id"])
	assert.Equal(t, "Project 3", decoded["name"])
	assert.Equal(t, float64(2), decoded["duration"])
	assert.Equal(t, []any{float64(2)}, decoded["prerequisites"])
	assert.Equal(t, []any{float64(4), float64(5)}, decoded["successors"], "ids must be sorted")
	assert.Equal(t, []any{float64(9)}, decoded["mutual_exclusions"])
	assert.Equal(t, []any{float64(4), float64(6)}, decoded["cost"])
	assert.Equal(t, []any{float64(7), float64(8)}, decoded["value"])
}

func TestEmptyRelationsMarshalAsArrays(t *testing.T) {
	p := newProject(1, 1, []float64{5}, []float64{5}, 5, 5)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prerequisites":[]`)
	assert.Contains(t, string(data), `"successors":[]`)
	assert.Contains(t, string(data), `"mutual_exclusions":[]`)
}

func TestInstanceJSONShape(t *testing.T) {
	p := newProject(1, 1, []float64{5}, []float64{5}, 5, 5)
	inst := &ProjectProblemInstance{
		Projects:         []*Project{p},
		Synergies:        []*Synergy{{ProjectIDs: []int{1, 2}, Value: 3}},
		Budget:           []float64{10, 11},
		InitiationBudget: []float64{2.5, 2.75},
		OngoingBudget:    []float64{7.5, 8.25},
		PlanningWindow:   1,
		Identifier:       "shape-test",
	}

	data, err := inst.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "shape-test", decoded["problem_name"])
	assert.Equal(t, float64(1), decoded["periods"])
	assert.Equal(t, []any{float64(10), float64(11)}, decoded["budget"])
	assert.Contains(t, decoded, "initiation_budget")
	assert.Contains(t, decoded, "maintenance_budget")

	synergies := decoded["synergies"].([]any)
	require.Len(t, synergies, 1)
	syn := synergies[0].(map[string]any)
	assert.Equal(t, float64(3), syn["value"])
	assert.Equal(t, []any{float64(1), float64(2)}, syn["project_ids"])

	require.Len(t, decoded["projects"].([]any), 1)
}

func TestInstanceNilSynergiesMarshal(t *testing.T) {
	inst := &ProjectProblemInstance{
		Projects:         []*Project{},
		Budget:           []float64{1},
		InitiationBudget: []float64{0.25},
		OngoingBudget:    []float64{0.75},
		PlanningWindow:   1,
		Identifier:       "empty",
	}
	data, err := json.Marshal(inst)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"synergies":[]`)
}

func TestStringRenderers(t *testing.T) {
	p := newProject(2, 1, []float64{5}, []float64{6}, 5, 6)
	p.ExclusionList.Add(7)
	s := p.String()
	assert.Contains(t, s, "ID: 2")
	assert.Contains(t, s, "Project 2")
	assert.Contains(t, s, "Excl.: [7]")

	inst := &ProjectProblemInstance{
		Projects:       []*Project{p},
		Synergies:      []*Synergy{{ProjectIDs: []int{1, 2}, Value: 3}},
		Budget:         []float64{10},
		PlanningWindow: 1,
		BudgetWindow:   1,
		NumProjects:    1,
		Identifier:     "render",
	}
	out := inst.String()
	assert.Contains(t, out, "Instance: render")
	assert.Contains(t, out, "N. projects: 1")
	assert.Contains(t, out, "Projects:")
	assert.Contains(t, out, "Synergies:")
}
