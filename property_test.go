// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcollins-dev/pst/pstgen"
)

// checkInvariants asserts invariants 1, 3 and 5 of the five that must
// hold of any computed result, independent of how the input was built;
// invariants 2 and 4 are covered by the notes and test further below.
func checkInvariants(t *testing.T, result PSTResult[string]) {
	t.Helper()

	// 1. Every non-root region's entry and exit edge share a class.
	for id, r := range result.Regions {
		if id == result.Root {
			continue
		}
		require.NotNil(t, r.EntryEdge)
		require.NotNil(t, r.ExitEdge)
		entry, ok1 := result.Edges[*r.EntryEdge]
		exit, ok2 := result.Edges[*r.ExitEdge]
		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, entry.ClassID, exit.ClassID, "region %d entry/exit class mismatch", id)
		assert.NotEqual(t, -1, entry.ClassID, "region %d entry edge unclassified", id)
	}

	// 3. Nesting is a forest rooted at 0: every region reaches root by
	// following Parent, with no cycles, and every non-root id appears in
	// exactly one parent's Children.
	childCount := make(map[int]int)
	for id, r := range result.Regions {
		if id == result.Root {
			continue
		}
		visited := map[int]bool{id: true}
		cur := id
		for {
			require.NotNil(t, r.Parent)
			p := *r.Parent
			if visited[p] && p != result.Root {
				t.Fatalf("cycle detected walking parents from region %d", id)
			}
			cur = p
			if cur == result.Root {
				break
			}
			visited[cur] = true
			r = result.Regions[cur]
		}
	}
	for _, r := range result.Regions {
		for _, c := range r.Children {
			childCount[c]++
		}
	}
	for id := range result.Regions {
		if id == result.Root {
			continue
		}
		assert.Equal(t, 1, childCount[id], "region %d must be exactly one parent's child", id)
	}

	// 5. Published edge table excludes capping edges.
	for _, e := range result.Edges {
		assert.NotEqual(t, edgeKindCapping, e.Kind)
	}
}

func TestPropertiesOnFixedGraphs(t *testing.T) {
	cases := [][][2]string{
		paperFigureEdges(),
		{{"S", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "T"}},
		{{"S", "A"}, {"A", "B"}, {"B", "C"}, {"C", "B"}, {"C", "T"}},
	}
	for _, edges := range cases {
		result, err := ComputePST(AdjacencyFromEdges(edges), true)
		require.NoError(t, err)
		checkInvariants(t, result)
	}
}

func TestPropertiesOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		cfg := pstgen.Config{
			Nodes:        4 + i%12,
			EdgeFactor:   1.3,
			BackEdgeProb: 0.2,
			ParallelProb: 0.1,
		}
		adj := pstgen.RandomCFG(cfg, r)
		result, err := ComputePST(adj, true)
		require.NoError(t, err)
		checkInvariants(t, result)
	}
}

// 2. Edge-split containment: every region's entry/exit pair, checked via
// the oracle's independent dominance computation, must agree with what
// the Nesting Resolver derived — covered end to end by
// TestPaperFigureMatchesNaive (paper_test.go) and TestDiamond / TestLoop /
// TestLinearChain (pst_test.go), which compare full (entry, exit) pair
// sets against the oracle in oracle_test.go rather than re-deriving
// containment here.

// 4. Region ids are stable across repeated calls on the same input.
func TestRegionIDsStableAcrossRuns(t *testing.T) {
	adj := AdjacencyFromEdges(paperFigureEdges())
	r1, err := ComputePST(adj, true)
	require.NoError(t, err)
	r2, err := ComputePST(adj, true)
	require.NoError(t, err)
	assert.Equal(t, r1.Regions, r2.Regions)
	assert.Equal(t, r1.Edges, r2.Edges)
}
