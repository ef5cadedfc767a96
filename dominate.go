// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "math/big"

// edgeSplitGraph is the node-split form of the augmented graph used to
// compute edge-to-edge dominance: every non-back,
// non-capping edge u->v gets its own synthetic node e, replacing the
// edge with u->e->v, so that an edge "dominates" exactly when its
// synthetic node does.
type edgeSplitGraph struct {
	total     int // node_count + one synthetic node per split edge
	edgeNode  map[int]int
	preds     [][]int
	succs     [][]int
	superEntry int
	superExit  int
}

func buildEdgeSplitGraph[N comparable](g *augmentedGraph[N]) *edgeSplitGraph {
	nodeCount := len(g.nodes)
	edgeNode := make(map[int]int)
	for _, e := range g.edges {
		if e.kind == eBack || e.kind == eCapping {
			continue
		}
		edgeNode[e.id] = nodeCount + len(edgeNode)
	}

	total := nodeCount + len(edgeNode)
	preds := make([][]int, total)
	succs := make([][]int, total)

	for _, e := range g.edges {
		if e.kind == eBack || e.kind == eCapping {
			continue
		}
		eIdx := edgeNode[e.id]
		succs[e.u] = append(succs[e.u], eIdx)
		preds[eIdx] = append(preds[eIdx], int(e.u))
		succs[eIdx] = append(succs[eIdx], int(e.v))
		preds[e.v] = append(preds[e.v], eIdx)
	}

	return &edgeSplitGraph{
		total:      total,
		edgeNode:   edgeNode,
		preds:      preds,
		succs:      succs,
		superEntry: int(g.superEntry),
		superExit:  int(g.superExit),
	}
}

// naiveDominators computes, for every node of a graph with total nodes
// and the given predecessor lists, the set of nodes that dominate it
// (including itself), via the textbook fixed-point iteration: start with
// every node dominated by everything, then repeatedly tighten each node's
// dominator set to the intersection of its predecessors' sets plus
// itself, until nothing changes. Sets are represented as math/big.Int
// bitsets (one bit per node) so intersection is a single AND, favoring
// clarity over the asymptotic optimality of Lengauer-Tarjan.
func naiveDominators(total, start int, preds [][]int) []*big.Int {
	full := new(big.Int)
	for i := 0; i < total; i++ {
		full.SetBit(full, i, 1)
	}

	dom := make([]*big.Int, total)
	for i := range dom {
		dom[i] = new(big.Int).Set(full)
	}
	dom[start] = new(big.Int).SetBit(new(big.Int), start, 1)

	changed := true
	for changed {
		changed = false
		for n := 0; n < total; n++ {
			if n == start {
				continue
			}
			var newDom *big.Int
			if len(preds[n]) == 0 {
				newDom = new(big.Int).SetBit(new(big.Int), n, 1)
			} else {
				inter := new(big.Int).Set(full)
				for _, p := range preds[n] {
					inter.And(inter, dom[p])
				}
				newDom = new(big.Int).SetBit(inter, n, 1)
			}
			if newDom.Cmp(dom[n]) != 0 {
				dom[n] = newDom
				changed = true
			}
		}
	}
	return dom
}

// edgeSplitDominators computes both the dominator and post-dominator
// bitsets over the edge-split graph, rooted at the augmented graph's
// super-entry (forward direction) and super-exit (over succs, the
// reverse direction) respectively.
func edgeSplitDominators[N comparable](g *augmentedGraph[N]) (*edgeSplitGraph, []*big.Int, []*big.Int) {
	esg := buildEdgeSplitGraph(g)
	dom := naiveDominators(esg.total, esg.superEntry, esg.preds)
	postdom := naiveDominators(esg.total, esg.superExit, esg.succs)
	return esg, dom, postdom
}
