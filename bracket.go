// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

// bracketNode is one entry of an arena-backed doubly-linked list. Lists
// are identified by the arena index of a sentinel head node; real entries
// point back at the edge they hold so the bracket engine can read off an
// edge's current size/class in O(1) without a parallel map.
type bracketNode struct {
	edge       *iEdge // nil for a list's sentinel head
	prev, next int    // arena indices; the list is circular through its sentinel head
	size       int    // sentinel-only: live entry count of this list
}

// bracketArena backs every bracket list used during one cycle-equivalence
// pass with a single growable slice, so push/concat/delete are pointer
// rewrites rather than allocations, favoring slice-backed structures over
// per-node heap objects linked by real pointers.
type bracketArena struct {
	nodes []bracketNode
}

func newBracketArena(capHint int) *bracketArena {
	return &bracketArena{nodes: make([]bracketNode, 0, capHint)}
}

// newList allocates a fresh empty list (just its sentinel head) and
// returns the head's arena index.
func (a *bracketArena) newList() int {
	h := len(a.nodes)
	a.nodes = append(a.nodes, bracketNode{prev: h, next: h})
	return h
}

func (a *bracketArena) empty(head int) bool {
	return a.nodes[head].next == head
}

// size reports how many real entries (excluding the sentinel) sit in the
// list headed at head, in O(1).
func (a *bracketArena) size(head int) int {
	return a.nodes[head].size
}

// push inserts e at the front of the list headed at head and returns the
// new entry's arena index, which the caller stores on e.listNode as its
// delete handle.
func (a *bracketArena) push(head int, e *iEdge) int {
	idx := len(a.nodes)
	first := a.nodes[head].next
	a.nodes = append(a.nodes, bracketNode{edge: e, prev: head, next: first})
	a.nodes[head].next = idx
	a.nodes[first].prev = idx
	a.nodes[head].size++
	return idx
}

// top returns the edge at the front of the list headed at head, or nil if
// the list is empty.
func (a *bracketArena) top(head int) *iEdge {
	if a.empty(head) {
		return nil
	}
	return a.nodes[a.nodes[head].next].edge
}

// delete removes the entry at arena index idx from the list headed at
// head, in O(1), by rewriting its neighbors' links. idx must currently
// belong to the list headed at head (true for every call site here: a
// bracket is always deleted from the same node's list it was last pushed
// or merged into, never from an abandoned child list).
func (a *bracketArena) delete(head, idx int) {
	n := a.nodes[idx]
	a.nodes[n.prev].next = n.next
	a.nodes[n.next].prev = n.prev
	a.nodes[head].size--
}

// concat splices the entire list headed at src onto the front of the
// list headed at dst, in O(1), and leaves src as an empty list (its
// sentinel now referring only to itself). Used to merge a child's
// bracket list into its parent's during the DFS post-visit.
func (a *bracketArena) concat(dst, src int) {
	if a.empty(src) {
		return
	}
	srcFirst := a.nodes[src].next
	srcLast := a.nodes[src].prev
	dstFirst := a.nodes[dst].next

	a.nodes[dst].next = srcFirst
	a.nodes[srcFirst].prev = dst
	a.nodes[srcLast].next = dstFirst
	a.nodes[dstFirst].prev = srcLast

	a.nodes[dst].size += a.nodes[src].size

	a.nodes[src].next = src
	a.nodes[src].prev = src
	a.nodes[src].size = 0
}
