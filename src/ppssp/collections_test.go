package ppssp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopProjects(t *testing.T) {
	costs := []float64{40, 10, 55, 25, 70}
	projects := make([]*Project, len(costs))
	for i, c := range costs {
		projects[i] = newProject(i+1, 1, []float64{c}, []float64{c}, c, c)
	}

	top := TopProjects(projects, 3)
	require.Len(t, top, 3)
	assert.Equal(t, 5, top[0].ID)
	assert.Equal(t, 3, top[1].ID)
	assert.Equal(t, 1, top[2].ID)

	assert.Nil(t, TopProjects(projects, 0))
	assert.Len(t, TopProjects(projects, 10), len(projects))
}
