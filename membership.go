// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "sort"

// NodeMembership reports, for every node appearing in r (including
// SuperEntry and SuperExit), the ids of every region that contains it,
// root (0) always included. It is the same edge-split dominance relation
// the nesting resolver uses for region-to-region containment, applied to
// plain nodes instead of region boundaries, and exists
// so a renderer can assign nodes to their innermost enclosing region
// without reaching into this package's unexported scratch state — which
// does not survive past the ComputePST call that produced r anyway.
//
// Region ids in each returned slice are in ascending id order, root (0)
// first. Ascending id is not nesting order: an enclosing region can have
// a higher id than a region it contains.
func NodeMembership[N comparable](r PSTResult[N]) map[N][]int {
	nodes, index := membershipNodeOrder(r)
	preds, succs, edgeNode := membershipEdgeSplitGraph(r, index)
	total := len(nodes) + len(edgeNode)

	dom := naiveDominators(total, index[r.SuperEntry], preds)
	postdom := naiveDominators(total, index[r.SuperExit], succs)

	regionIDs := make([]int, 0, len(r.Regions))
	for id := range r.Regions {
		regionIDs = append(regionIDs, id)
	}
	sort.Ints(regionIDs)

	out := make(map[N][]int, len(nodes))
	for _, n := range nodes {
		ni := index[n]
		members := []int{0}
		for _, id := range regionIDs {
			if id == 0 {
				continue
			}
			region := r.Regions[id]
			if region.EntryEdge == nil || region.ExitEdge == nil {
				continue
			}
			entryNode, ok1 := edgeNode[*region.EntryEdge]
			exitNode, ok2 := edgeNode[*region.ExitEdge]
			if !ok1 || !ok2 {
				continue
			}
			if dom[ni].Bit(entryNode) == 1 && postdom[ni].Bit(exitNode) == 1 {
				members = append(members, id)
			}
		}
		out[n] = members
	}
	return out
}

func membershipNodeOrder[N comparable](r PSTResult[N]) ([]N, map[N]int) {
	ids := make([]int, 0, len(r.Edges))
	for id := range r.Edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var order []N
	seen := make(map[N]struct{})
	add := func(n N) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			order = append(order, n)
		}
	}
	for _, id := range ids {
		e := r.Edges[id]
		add(e.Src)
		add(e.Dst)
	}
	add(r.SuperEntry)
	add(r.SuperExit)

	index := make(map[N]int, len(order))
	for i, n := range order {
		index[n] = i
	}
	return order, index
}

func membershipEdgeSplitGraph[N comparable](r PSTResult[N], index map[N]int) (preds, succs [][]int, edgeNode map[int]int) {
	nodeCount := len(index)
	ids := make([]int, 0, len(r.Edges))
	for id := range r.Edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	edgeNode = make(map[int]int)
	for _, id := range ids {
		if r.Edges[id].Kind == KindBack {
			continue
		}
		edgeNode[id] = nodeCount + len(edgeNode)
	}

	total := nodeCount + len(edgeNode)
	preds = make([][]int, total)
	succs = make([][]int, total)

	for _, id := range ids {
		e := r.Edges[id]
		if e.Kind == KindBack {
			continue
		}
		u, v := index[e.Src], index[e.Dst]
		eIdx := edgeNode[id]
		succs[u] = append(succs[u], eIdx)
		preds[eIdx] = append(preds[eIdx], u)
		succs[eIdx] = append(succs[eIdx], v)
		preds[v] = append(preds[v], eIdx)
	}

	return preds, succs, edgeNode
}
