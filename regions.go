// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

// buildRegions implements the region builder: walking
// edgeOrder once, every time a classified edge's class was last seen at
// an earlier edge in the order, the pair brackets a new region whose
// entry is the earlier edge and whose exit is this one. Region 0 is the
// synthetic root containing every top-level region; parent/children are
// filled in later by the Nesting Resolver.
func buildRegions[N comparable](g *augmentedGraph[N], edgeOrder []int) map[int]Region {
	regions := map[int]Region{
		0: {ID: 0},
	}
	lastEdgeByClass := make(map[int]int)

	for _, edgeID := range edgeOrder {
		cls := g.edges[edgeID].classID
		if cls == 0 {
			continue
		}
		if prev, ok := lastEdgeByClass[cls]; ok {
			regionID := len(regions)
			entry, exit := prev, edgeID
			regions[regionID] = Region{
				ID:        regionID,
				EntryEdge: &entry,
				ExitEdge:  &exit,
			}
		}
		lastEdgeByClass[cls] = edgeID
	}

	return regions
}
