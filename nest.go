// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "math/big"

// resolveNesting implements the nesting resolver: for
// every non-root region it finds the innermost other region that
// contains it (a region's entry edge-node dominates the child's entry
// edge-node, and its exit edge-node post-dominates the child's exit
// edge-node) and attaches it as the parent, filling in Children in the
// same pass. Region 0 contains everything and is the fallback parent
// when no tighter candidate exists.
func resolveNesting(regions map[int]Region, esg *edgeSplitGraph, dom, postdom []*big.Int) {
	contains := func(parentID, childID int) bool {
		if parentID == 0 {
			return true
		}
		parent, child := regions[parentID], regions[childID]
		if parent.EntryEdge == nil || parent.ExitEdge == nil {
			return false
		}
		if child.EntryEdge == nil || child.ExitEdge == nil {
			return false
		}
		pEntry, ok1 := esg.edgeNode[*parent.EntryEdge]
		pExit, ok2 := esg.edgeNode[*parent.ExitEdge]
		cEntry, ok3 := esg.edgeNode[*child.EntryEdge]
		cExit, ok4 := esg.edgeNode[*child.ExitEdge]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return false
		}
		return dom[cEntry].Bit(pEntry) == 1 && postdom[cExit].Bit(pExit) == 1
	}

	// Region ids are assigned densely in [0, len(regions)) by the Region
	// Builder, so iterating them in ascending numeric order both visits
	// every region and gives deterministic, discovery-order Children
	// slices (Go map iteration order is not stable enough on its own).
	n := len(regions)

	for regionID := 1; regionID < n; regionID++ {
		parentID := 0
		for candidateID := 1; candidateID < n; candidateID++ {
			if candidateID == regionID {
				continue
			}
			if contains(candidateID, regionID) {
				if parentID == 0 || contains(parentID, candidateID) {
					parentID = candidateID
				}
			}
		}
		r := regions[regionID]
		r.Parent = &parentID
		regions[regionID] = r

		p := regions[parentID]
		p.Children = append(p.Children, regionID)
		regions[parentID] = p
	}
}
