// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import (
	"fmt"
	"math/big"
	"sort"
)

// The oracle below is a deliberately naive, independent reimplementation
// used only to cross-check ComputePST's output: it enumerates simple
// cycles directly instead of using bracket lists, and recomputes
// dominance with the same textbook fixed point ComputePST itself uses.
// Mirrors _examples/original_source/tests/test_pst.py's
// _enumerate_cycles/_canonical_pairs, adapted to string-keyed graphs.

type oracleEdge struct {
	u, v, kind string
}

func oracleAugment(adj map[string][]string) (nodes []string, edges []oracleEdge, superEntry, superExit string) {
	seen := make(map[string]struct{})
	add := func(n string) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			nodes = append(nodes, n)
		}
	}
	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, u := range keys {
		add(u)
		for _, v := range adj[u] {
			add(v)
			edges = append(edges, oracleEdge{u, v, "orig"})
		}
	}

	indeg := make(map[string]int)
	outdeg := make(map[string]int)
	for _, e := range edges {
		outdeg[e.u]++
		indeg[e.v]++
	}

	var entryNodes, exitNodes []string
	for _, n := range nodes {
		if indeg[n] == 0 {
			entryNodes = append(entryNodes, n)
		}
		if outdeg[n] == 0 {
			exitNodes = append(exitNodes, n)
		}
	}
	if len(entryNodes) == 0 {
		entryNodes = append([]string{}, nodes...)
	}
	if len(exitNodes) == 0 {
		exitNodes = append([]string{}, nodes...)
	}

	superEntry = uniqueOracleLabel("__super_entry__", seen)
	add(superEntry)
	superExit = uniqueOracleLabel("__super_exit__", seen)
	add(superExit)

	for _, n := range entryNodes {
		edges = append(edges, oracleEdge{superEntry, n, "super_entry"})
	}
	for _, n := range exitNodes {
		edges = append(edges, oracleEdge{n, superExit, "super_exit"})
	}
	edges = append(edges, oracleEdge{superExit, superEntry, "back"})

	return nodes, edges, superEntry, superExit
}

func uniqueOracleLabel(base string, used map[string]struct{}) string {
	if _, ok := used[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

// oracleCycles enumerates every simple cycle of the undirected augmented
// graph as a set of edge ids, by brute-force DFS from every node,
// discarding paths that revisit a smaller start index (the standard trick
// to avoid reporting the same cycle once per starting node/direction).
func oracleCycles(nodes []string, edges []oracleEdge) []map[int]struct{} {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	type half struct {
		edge  int
		other int
	}
	undirected := make([][]half, len(nodes))
	for id, e := range edges {
		ui, vi := index[e.u], index[e.v]
		undirected[ui] = append(undirected[ui], half{id, vi})
		undirected[vi] = append(undirected[vi], half{id, ui})
	}

	type frame struct {
		node, parent int
		pathNodes     map[int]struct{}
		pathEdges     []int
	}

	seenCycles := make(map[string]map[int]struct{})

	for start := 0; start < len(nodes); start++ {
		initPath := map[int]struct{}{start: {}}
		stack := []frame{{start, -1, initPath, nil}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, h := range undirected[f.node] {
				if h.other == f.parent {
					continue
				}
				if h.other == start {
					if len(f.pathEdges) > 0 {
						cyc := append(append([]int{}, f.pathEdges...), h.edge)
						seenCycles[cycleKey(cyc)] = toSet(cyc)
					}
					continue
				}
				if _, ok := f.pathNodes[h.other]; ok {
					continue
				}
				if h.other < start {
					continue
				}
				nextNodes := make(map[int]struct{}, len(f.pathNodes)+1)
				for k := range f.pathNodes {
					nextNodes[k] = struct{}{}
				}
				nextNodes[h.other] = struct{}{}
				nextEdges := append(append([]int{}, f.pathEdges...), h.edge)
				stack = append(stack, frame{h.other, f.node, nextNodes, nextEdges})
			}
		}
	}

	out := make([]map[int]struct{}, 0, len(seenCycles))
	for _, c := range seenCycles {
		out = append(out, c)
	}
	return out
}

func toSet(ids []int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func cycleKey(ids []int) string {
	sorted := append([]int{}, ids...)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

func oracleEdgeCycleSets(edgeCount int, cycles []map[int]struct{}) []string {
	belongsTo := make([][]int, edgeCount)
	for idx, cyc := range cycles {
		for edgeID := range cyc {
			belongsTo[edgeID] = append(belongsTo[edgeID], idx)
		}
	}
	keys := make([]string, edgeCount)
	for id, v := range belongsTo {
		sort.Ints(v)
		keys[id] = fmt.Sprint(v)
	}
	return keys
}

func oracleDominators(total, start int, preds [][]int) []*big.Int {
	return naiveDominators(total, start, preds)
}

func oracleDominanceData(nodes []string, edges []oracleEdge, superEntry, superExit string) (dom, postdom []*big.Int, edgeNodeIndex map[int]int) {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	edgeNodeIndex = make(map[int]int)
	for id, e := range edges {
		if e.kind == "back" {
			continue
		}
		edgeNodeIndex[id] = len(nodes) + len(edgeNodeIndex)
	}
	total := len(nodes) + len(edgeNodeIndex)
	succs := make([][]int, total)
	preds := make([][]int, total)
	for id, e := range edges {
		eIdx, ok := edgeNodeIndex[id]
		if !ok {
			continue
		}
		u, v := index[e.u], index[e.v]
		succs[u] = append(succs[u], eIdx)
		preds[eIdx] = append(preds[eIdx], u)
		succs[eIdx] = append(succs[eIdx], v)
		preds[v] = append(preds[v], eIdx)
	}
	dom = oracleDominators(total, index[superEntry], preds)
	postdom = oracleDominators(total, index[superExit], succs)
	return dom, postdom, edgeNodeIndex
}

type oracleTriple struct{ u, v, kind string }

// oracleCanonicalPairs returns the set of (entry, exit) edge-triple pairs
// the naive definition of cycle-equivalence + edge-split dominance
// produces directly from adj, independent of ComputePST.
func oracleCanonicalPairs(adj map[string][]string) map[[2]oracleTriple]struct{} {
	nodes, edges, superEntry, superExit := oracleAugment(adj)
	cycles := oracleCycles(nodes, edges)
	edgeCycleKeys := oracleEdgeCycleSets(len(edges), cycles)
	dom, postdom, edgeNodeIndex := oracleDominanceData(nodes, edges, superEntry, superExit)

	type pair struct{ a, b int }
	var sese []pair
	for a := range edges {
		if edges[a].kind == "back" {
			continue
		}
		for b := range edges {
			if a == b || edges[b].kind == "back" {
				continue
			}
			if edgeCycleKeys[a] != edgeCycleKeys[b] {
				continue
			}
			if dom[edgeNodeIndex[b]].Bit(edgeNodeIndex[a]) != 1 {
				continue
			}
			if postdom[edgeNodeIndex[a]].Bit(edgeNodeIndex[b]) != 1 {
				continue
			}
			sese = append(sese, pair{a, b})
		}
	}

	byEntry := make(map[int][]int)
	byExit := make(map[int][]int)
	for _, p := range sese {
		byEntry[p.a] = append(byEntry[p.a], p.b)
		byExit[p.b] = append(byExit[p.b], p.a)
	}

	canonical := make(map[pair]struct{})
	for a, bs := range byEntry {
		for _, b := range bs {
			ok := true
			for _, x := range bs {
				if dom[edgeNodeIndex[x]].Bit(edgeNodeIndex[b]) != 1 {
					ok = false
					break
				}
			}
			if ok {
				canonical[pair{a, b}] = struct{}{}
			}
		}
	}

	filtered := make(map[pair]struct{})
	for b, as := range byExit {
		for _, a := range as {
			ok := true
			for _, x := range as {
				if postdom[edgeNodeIndex[x]].Bit(edgeNodeIndex[a]) != 1 {
					ok = false
					break
				}
			}
			if ok {
				if _, isCanon := canonical[pair{a, b}]; isCanon {
					filtered[pair{a, b}] = struct{}{}
				}
			}
		}
	}

	edgeTuple := func(id int) oracleTriple {
		e := edges[id]
		return oracleTriple{e.u, e.v, e.kind}
	}

	out := make(map[[2]oracleTriple]struct{}, len(filtered))
	for p := range filtered {
		out[[2]oracleTriple{edgeTuple(p.a), edgeTuple(p.b)}] = struct{}{}
	}
	return out
}

func pstPairs[N comparable](r PSTResult[N]) map[[2]oracleTriple]struct{} {
	out := make(map[[2]oracleTriple]struct{}, len(r.Regions))
	for id, region := range r.Regions {
		if id == r.Root {
			continue
		}
		if region.EntryEdge == nil || region.ExitEdge == nil {
			continue
		}
		entry := r.Edges[*region.EntryEdge]
		exit := r.Edges[*region.ExitEdge]
		if entry.Kind == KindBack || exit.Kind == KindBack {
			continue
		}
		key := [2]oracleTriple{
			{fmt.Sprint(entry.Src), fmt.Sprint(entry.Dst), entry.Kind.String()},
			{fmt.Sprint(exit.Src), fmt.Sprint(exit.Dst), exit.Kind.String()},
		}
		out[key] = struct{}{}
	}
	return out
}

func regionMap[N comparable](r PSTResult[N]) map[[2]oracleTriple]int {
	out := make(map[[2]oracleTriple]int, len(r.Regions))
	for id, region := range r.Regions {
		if id == r.Root {
			continue
		}
		entry := r.Edges[*region.EntryEdge]
		exit := r.Edges[*region.ExitEdge]
		key := [2]oracleTriple{
			{fmt.Sprint(entry.Src), fmt.Sprint(entry.Dst), entry.Kind.String()},
			{fmt.Sprint(exit.Src), fmt.Sprint(exit.Dst), exit.Kind.String()},
		}
		out[key] = id
	}
	return out
}

func adjFromEdgeList(edges [][2]string) map[string][]string {
	adj := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, e := range edges {
		seen[e[0]] = struct{}{}
		seen[e[1]] = struct{}{}
	}
	for n := range seen {
		adj[n] = nil
	}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	return adj
}
