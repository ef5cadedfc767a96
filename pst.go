// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

// ComputePST builds the Program Structure Tree of a directed graph keyed
// by string node identifiers: it augments the graph with synthetic
// super-entry/super-exit nodes, classifies every edge into a cycle-
// equivalence class, pairs classes into candidate regions in DFS-edge
// order, and resolves canonical parent/child nesting via edge-split
// dominance.
//
// strict is reserved for a future stricter-validation mode; both true
// and false currently produce identical results, matching the reference
// implementation this package follows.
func ComputePST(adj *Adjacency[string], strict bool) (PSTResult[string], error) {
	return ComputePSTFunc(adj, strict, func(label string) string { return label })
}

// ComputePSTFunc is ComputePST generalized to an arbitrary comparable
// node type N. Since the synthetic super-entry/super-exit nodes an
// augmented graph needs only ever exist as strings (minted from the
// other nodes' %v forms), callers whose N isn't string supply mkSuper to
// turn such a label into a value of N; ComputePST itself just passes the
// string identity function.
func ComputePSTFunc[N comparable](adj *Adjacency[N], strict bool, mkSuper func(label string) N) (PSTResult[N], error) {
	g, superEntry, superExit, err := augment(adj, mkSuper)
	if err != nil {
		return PSTResult[N]{}, err
	}

	// An empty input augments to the super-entry/super-exit pair joined
	// only by the back edge, which lies on no cycle: the result is the
	// root region alone, with the back edge published unclassified (-1).
	if adj.Len() == 0 {
		return publishResult(g, map[int]Region{0: {ID: 0}}, superEntry, superExit), nil
	}

	if err := classifyCycleEquivalence(g); err != nil {
		return PSTResult[N]{}, err
	}

	edgeOrder := dfsEdgeOrder(g)
	regions := buildRegions(g, edgeOrder)

	esg, dom, postdom := edgeSplitDominators(g)
	resolveNesting(regions, esg, dom, postdom)

	return publishResult(g, regions, superEntry, superExit), nil
}
