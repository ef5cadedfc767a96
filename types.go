// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

import "fmt"

// EdgeKind classifies a published edge.
type EdgeKind int8

const (
	// KindOrig is an edge present in the caller's input graph.
	KindOrig EdgeKind = iota
	// KindSuperEntry is a synthetic edge from the super-entry node to an
	// entry node of the input graph.
	KindSuperEntry
	// KindSuperExit is a synthetic edge from an exit node of the input
	// graph to the super-exit node.
	KindSuperExit
	// KindBack is the single synthetic edge closing super-exit back to
	// super-entry, added so the augmented graph is strongly connected.
	KindBack
)

// capping edges are internal-only (synthetic back-edges used during
// cycle-equivalence classification) and never reach EdgeKind; they are
// filtered out before a result is published.
const edgeKindCapping = EdgeKind(-1)

func (k EdgeKind) String() string {
	switch k {
	case KindOrig:
		return "orig"
	case KindSuperEntry:
		return "super_entry"
	case KindSuperExit:
		return "super_exit"
	case KindBack:
		return "back"
	case edgeKindCapping:
		return "capping"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int8(k))
	}
}

// NodeEdges holds a node's declared adjacency. Out defines the directed
// edges leaving the node; In is informational only and never creates an
// edge by itself (a node named only in another node's In is still added
// to the graph, but with no outgoing edges of its own unless it also has
// an Out list).
type NodeEdges[N comparable] struct {
	Out []N
	In  []N
}

// Adjacency is the input to ComputePST: a mapping from node identifier to
// its declared out/in neighbor lists.
//
// Go maps have no defined iteration order, but ComputePST's determinism
// contract (stable region ids, edge ids, and class ids across repeated
// calls on "the same input") depends on a deterministic node and edge
// enumeration order. Adjacency therefore tracks first-seen
// insertion order itself rather than being a bare map type; build one with
// NewAdjacency and Set, or AdjacencyFromEdges for a plain edge list.
type Adjacency[N comparable] struct {
	order   []N
	entries map[N]NodeEdges[N]
}

// NewAdjacency returns an empty Adjacency ready for Set calls.
func NewAdjacency[N comparable]() *Adjacency[N] {
	return &Adjacency[N]{entries: make(map[N]NodeEdges[N])}
}

// Set records node's declared out/in neighbor lists. The first Set call
// for a given node fixes its position in iteration order; later calls
// for the same node update its edges without moving it.
func (a *Adjacency[N]) Set(node N, edges NodeEdges[N]) {
	if _, ok := a.entries[node]; !ok {
		a.order = append(a.order, node)
	}
	a.entries[node] = edges
}

// AddOut appends dst to node's Out list, implicitly registering both
// node and dst (with empty edge lists) if either is new.
func (a *Adjacency[N]) AddOut(node, dst N) {
	e := a.entries[node]
	e.Out = append(e.Out, dst)
	a.Set(node, e)
	if _, ok := a.entries[dst]; !ok {
		a.Set(dst, NodeEdges[N]{})
	}
}

// Get returns node's declared edges and whether node was registered at
// all. AddOut registers its destination with empty edges; a node named
// only inside the Out or In lists passed to Set is not registered, and
// Get reports false for it.
func (a *Adjacency[N]) Get(node N) (NodeEdges[N], bool) {
	e, ok := a.entries[node]
	return e, ok
}

// Nodes returns the registered nodes in first-seen order.
func (a *Adjacency[N]) Nodes() []N {
	out := make([]N, len(a.order))
	copy(out, a.order)
	return out
}

// Len reports the number of registered nodes.
func (a *Adjacency[N]) Len() int { return len(a.order) }

// AdjacencyFromEdges builds an Adjacency from a plain ordered edge list,
// the shape most example graphs and tests are written in. Nodes are
// registered in first-seen order (source before destination of each
// edge), the "keys first, then destinations" rule applied to a graph
// with no isolated or in-only nodes.
func AdjacencyFromEdges[N comparable](edges [][2]N) *Adjacency[N] {
	a := NewAdjacency[N]()
	for _, e := range edges {
		a.AddOut(e[0], e[1])
	}
	return a
}

// Edge is a published edge of a computed PST: either an original edge of
// the caller's graph, or one of the synthetic super-entry/super-exit/back
// edges added during augmentation. Capping edges, which exist only as
// scratch state during classification, are never published.
type Edge[N comparable] struct {
	ID      int
	Src     N
	Dst     N
	Kind    EdgeKind
	ClassID int // >= 1 once classified; -1 sentinel must not occur on well-formed input
}

// Region is one SESE fragment of the computed PST, or the synthetic root
// (Region 0) that contains every top-level region. EntryEdge, ExitEdge,
// and Parent are nil only for the root.
type Region struct {
	ID        int
	EntryEdge *int
	ExitEdge  *int
	Parent    *int
	Children  []int
}

// PSTResult is the immutable result of ComputePST. Built completely
// before being returned; callers must not mutate the Regions or Edges
// maps afterward — nothing in this package defends against it, trusting
// the caller the same way the adjacency-list types do.
type PSTResult[N comparable] struct {
	Root       int
	Regions    map[int]Region
	Edges      map[int]Edge[N]
	SuperEntry N
	SuperExit  N
}
