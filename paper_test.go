// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paperFigureEdges transcribes Figure 1(a) from the Johnson-Pearson-
// Pingali paper, the 22-edge graph used throughout the reference test
// suite as the end-to-end scenario (D4): two loops on separate branches
// out of n1, closed by the edges n13->n8 and n14->n2.
func paperFigureEdges() [][2]string {
	return [][2]string{
		{"start", "n1"},
		{"n1", "n2"},
		{"n1", "n3"},
		{"n2", "n4"},
		{"n3", "n5"},
		{"n4", "n6"},
		{"n5", "n7"},
		{"n5", "n8"},
		{"n6", "n9"},
		{"n6", "n10"},
		{"n7", "n11"},
		{"n8", "n11"},
		{"n9", "n12"},
		{"n10", "n12"},
		{"n11", "n13"},
		{"n12", "n14"},
		{"n13", "n8"},
		{"n13", "n15"},
		{"n14", "n2"},
		{"n14", "n16"},
		{"n15", "n16"},
		{"n16", "end"},
	}
}

func TestPaperFigureMatchesNaive(t *testing.T) {
	edges := paperFigureEdges()
	result, err := ComputePST(AdjacencyFromEdges(edges), true)
	require.NoError(t, err)

	expected := oracleCanonicalPairs(adjFromEdgeList(edges))
	actual := pstPairs(result)
	assert.Equal(t, expected, actual)
}

func TestPaperFigureEveryNodeReachable(t *testing.T) {
	edges := paperFigureEdges()
	result, err := ComputePST(AdjacencyFromEdges(edges), true)
	require.NoError(t, err)

	wantNodes := make(map[string]bool)
	for _, e := range edges {
		wantNodes[e[0]] = true
		wantNodes[e[1]] = true
	}
	seen := make(map[string]bool)
	for _, e := range result.Edges {
		seen[e.Src] = true
		seen[e.Dst] = true
	}
	for n := range wantNodes {
		assert.True(t, seen[n], "node %q missing from published edge table", n)
	}
}

func TestPaperFigureRootHasChildren(t *testing.T) {
	edges := paperFigureEdges()
	result, err := ComputePST(AdjacencyFromEdges(edges), true)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Regions[result.Root].Children)
}
