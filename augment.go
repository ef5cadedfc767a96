// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "fmt"

// ni is a dense, zero-based node index assigned during augmentation:
// internal plumbing, never exposed to callers, who only ever see their
// own node type N.
type ni int32

// edgeKind is the internal edge-kind space, a superset of the published
// EdgeKind that also includes capping edges (scratch state, never
// published).
type edgeKind int8

const (
	eOrig edgeKind = iota
	eSuperEntry
	eSuperExit
	eBack
	eCapping
)

func (k edgeKind) published() EdgeKind {
	switch k {
	case eOrig:
		return KindOrig
	case eSuperEntry:
		return KindSuperEntry
	case eSuperExit:
		return KindSuperExit
	case eBack:
		return KindBack
	default:
		return edgeKindCapping
	}
}

// iEdge is the scratch representation of an edge used throughout
// classification. Real edges (orig/superEntry/superExit/back) are built
// once by augment and never added to afterward; capping edges are
// synthesized on the fly by the bracket engine (cycleequiv.go) and carry
// ids past the real-edge id space.
type iEdge struct {
	id   int
	u, v ni
	kind edgeKind

	classID int // 0 == unclassified

	// bracket-list bookkeeping; meaningful only while this
	// edge sits at the tail of some node's bracket list.
	recentSize  int
	recentClass int

	// arena index of this edge's node in the bracket list it currently
	// belongs to, or -1 if it is in no list.
	listNode int
}

// undirHalf is one endpoint of an undirected adjacency entry: the edge id
// and the node at the other end.
type undirHalf struct {
	edge  int
	other ni
}

// augmentedGraph is the normalized, closed form of the caller's input:
// every node has a dense index, a super-entry and super-exit have been
// added, and the graph has been closed with a single back-edge so that
// the undirected form is guaranteed connected when the original graph is
// weakly connected through entries/exits.
type augmentedGraph[N comparable] struct {
	nodes []N        // dense index -> original node identifier
	index map[N]ni    // original node identifier -> dense index
	edges []*iEdge   // real edges (orig/superEntry/superExit/back), by id

	// directedAdj[n] lists, in insertion order, the ids of edges leaving
	// node n (back edges excluded) — feeds the edge-order enumerator.
	directedAdj [][]int

	// undirectedAdj[n] lists every edge incident to n, in the order both
	// endpoints were linked (including back) — feeds the bracket engine.
	undirectedAdj [][]undirHalf

	superEntry ni
	superExit  ni
}

// uniqueLabel mints a label derived from base that does not collide with
// any node identifier's string form already in use, suffixing "_1",
// "_2", ... as needed. Node identifiers are an arbitrary comparable type,
// so collision can only be checked against their %v rendering — the same
// approach the dot renderer uses to print them.
func uniqueLabel(base string, used map[string]struct{}) string {
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

// augment implements the graph augmentation step: it enumerates
// nodes in first-seen order, injects a super-entry and super-exit, and
// closes the graph with a synthetic super_exit -> super_entry back-edge.
//
// The synthetic super-entry/super-exit identifiers only ever exist as
// strings (minted by uniqueLabel against the %v form of every real node);
// mkSuper converts such a label into a value of the caller's node type N.
// ComputePST supplies the identity function for N = string, and
// ComputePSTFunc lets callers of any other comparable N supply their own.
func augment[N comparable](adj *Adjacency[N], mkSuper func(label string) N) (*augmentedGraph[N], N, N, error) {
	var zero N
	// Step 1: enumerate nodes in first-seen order (keys first, then
	// destinations, then In-only references).
	var order []N
	seen := make(map[N]struct{})
	add := func(n N) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			order = append(order, n)
		}
	}
	for _, n := range adj.Nodes() {
		add(n)
		e, _ := adj.Get(n)
		for _, d := range e.Out {
			add(d)
		}
		for _, s := range e.In {
			add(s)
		}
	}

	type rawEdge struct {
		u, v N
		kind edgeKind
	}
	var rawEdges []rawEdge
	indeg := make(map[N]int, len(order))
	outdeg := make(map[N]int, len(order))
	for _, n := range order {
		e, _ := adj.Get(n)
		for _, d := range e.Out {
			rawEdges = append(rawEdges, rawEdge{n, d, eOrig})
			outdeg[n]++
			indeg[d]++
		}
	}

	entryNodes := make([]N, 0)
	exitNodes := make([]N, 0)
	for _, n := range order {
		if indeg[n] == 0 {
			entryNodes = append(entryNodes, n)
		}
		if outdeg[n] == 0 {
			exitNodes = append(exitNodes, n)
		}
	}
	if len(entryNodes) == 0 {
		entryNodes = append(entryNodes, order...)
	}
	if len(exitNodes) == 0 {
		exitNodes = append(exitNodes, order...)
	}

	used := make(map[string]struct{}, len(order))
	for _, n := range order {
		used[fmt.Sprintf("%v", n)] = struct{}{}
	}
	superEntryLabel := uniqueLabel("__super_entry__", used)
	used[superEntryLabel] = struct{}{}
	superExitLabel := uniqueLabel("__super_exit__", used)

	superEntryNode := mkSuper(superEntryLabel)
	superExitNode := mkSuper(superExitLabel)
	if superEntryNode == superExitNode {
		return nil, zero, zero, fmt.Errorf("pst: mkSuper produced identical values %v for distinct labels %q and %q", superEntryNode, superEntryLabel, superExitLabel)
	}
	if _, ok := seen[superEntryNode]; ok {
		return nil, zero, zero, fmt.Errorf("pst: mkSuper produced a value %v that collides with an existing node", superEntryNode)
	}
	if _, ok := seen[superExitNode]; ok {
		return nil, zero, zero, fmt.Errorf("pst: mkSuper produced a value %v that collides with an existing node", superExitNode)
	}
	add(superEntryNode)
	add(superExitNode)

	for _, n := range entryNodes {
		rawEdges = append(rawEdges, rawEdge{superEntryNode, n, eSuperEntry})
	}
	for _, n := range exitNodes {
		rawEdges = append(rawEdges, rawEdge{n, superExitNode, eSuperExit})
	}
	rawEdges = append(rawEdges, rawEdge{superExitNode, superEntryNode, eBack})

	index := make(map[N]ni, len(order))
	for i, n := range order {
		index[n] = ni(i)
	}

	g := &augmentedGraph[N]{
		nodes:         order,
		index:         index,
		directedAdj:   make([][]int, len(order)),
		undirectedAdj: make([][]undirHalf, len(order)),
		superEntry:    index[superEntryNode],
		superExit:     index[superExitNode],
	}

	for id, re := range rawEdges {
		e := &iEdge{id: id, u: index[re.u], v: index[re.v], kind: re.kind, listNode: -1}
		g.edges = append(g.edges, e)
		if re.kind != eBack {
			g.directedAdj[e.u] = append(g.directedAdj[e.u], e.id)
		}
		g.undirectedAdj[e.u] = append(g.undirectedAdj[e.u], undirHalf{e.id, e.v})
		g.undirectedAdj[e.v] = append(g.undirectedAdj[e.v], undirHalf{e.id, e.u})
	}

	return g, superEntryNode, superExitNode, nil
}
