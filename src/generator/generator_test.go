package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppssp_datagen/src/ppssp"
)

func TestParseGroupTuples(t *testing.T) {
	tuples, err := parseGroupTuples("2:0.1, 3:0.05")
	require.NoError(t, err)
	assert.Equal(t, []ppssp.GroupTuple{{Size: 2, Proportion: 0.1}, {Size: 3, Proportion: 0.05}}, tuples)

	tuples, err = parseGroupTuples("")
	require.NoError(t, err)
	assert.Nil(t, tuples)

	_, err = parseGroupTuples("2")
	require.Error(t, err)

	_, err = parseGroupTuples("x:0.1")
	require.Error(t, err)

	_, err = parseGroupTuples("2:y")
	require.Error(t, err)
}
