// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

// publishResult assembles the final, immutable PSTResult from the
// augmented graph and the regions already resolved into a tree. Capping
// edges never reach
// this stage (the bracket engine keeps them out of g.edges entirely), so
// the only filtering left is translating dense node indices back to the
// caller's own node type N.
func publishResult[N comparable](g *augmentedGraph[N], regions map[int]Region, superEntry, superExit N) PSTResult[N] {
	edgesOut := make(map[int]Edge[N], len(g.edges))
	for _, e := range g.edges {
		classID := e.classID
		if classID == 0 {
			classID = -1
		}
		edgesOut[e.id] = Edge[N]{
			ID:      e.id,
			Src:     g.nodes[e.u],
			Dst:     g.nodes[e.v],
			Kind:    e.kind.published(),
			ClassID: classID,
		}
	}

	return PSTResult[N]{
		Root:       0,
		Regions:    regions,
		Edges:      edgesOut,
		SuperEntry: superEntry,
		SuperExit:  superExit,
	}
}
