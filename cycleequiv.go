// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package pst

// classifyCycleEquivalence implements the cycle-equivalence classifier:
// an iterative undirected DFS over the augmented graph,
// rooted at its super-entry, that assigns every real edge a classID such
// that two edges are cycle-equivalent iff they share a classID. It
// follows Johnson-Pearson-Pingali via bracket lists and capping edges,
// keeping the DFS itself on an explicit stack rather than recursing.
func classifyCycleEquivalence[N comparable](g *augmentedGraph[N]) error {
	n := len(g.nodes)

	dfsnum := make([]int, n)
	parent := make([]ni, n)
	parentEdge := make([]int, n)
	children := make([][]ni, n)
	backedgesFrom := make([][]int, n)
	backedgesTo := make([][]int, n)
	edgeUpper := make([]int, len(g.edges))
	edgeSeen := make([]bool, len(g.edges))
	postorder := make([]ni, 0, n)

	for i := range parent {
		parent[i] = -1
	}
	for i := range parentEdge {
		parentEdge[i] = -1
	}
	for i := range edgeUpper {
		edgeUpper[i] = -1
	}

	time := 0

	type frame struct {
		node ni
		next int // index into g.undirectedAdj[node]
	}

	dfs := func(start ni) {
		if dfsnum[start] != 0 {
			return
		}
		stack := []frame{{start, 0}}
		time++
		dfsnum[start] = time
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj := g.undirectedAdj[top.node]
			if top.next >= len(adj) {
				postorder = append(postorder, top.node)
				stack = stack[:len(stack)-1]
				continue
			}
			half := adj[top.next]
			top.next++
			if edgeSeen[half.edge] {
				continue
			}
			edgeSeen[half.edge] = true
			other := half.other
			node := top.node
			if dfsnum[other] == 0 {
				parent[other] = node
				parentEdge[other] = half.edge
				children[node] = append(children[node], other)
				time++
				dfsnum[other] = time
				stack = append(stack, frame{other, 0})
			} else if other == node {
				// A self-loop lies on no cycle but its own. It is recorded
				// only as ending at node, so the sweep below gives it a
				// class of its own without ever pushing it as a bracket.
				backedgesTo[node] = append(backedgesTo[node], half.edge)
			} else {
				var desc, anc ni
				if dfsnum[other] < dfsnum[node] {
					desc, anc = node, other
				} else {
					desc, anc = other, node
				}
				backedgesFrom[desc] = append(backedgesFrom[desc], half.edge)
				backedgesTo[anc] = append(backedgesTo[anc], half.edge)
				edgeUpper[half.edge] = int(anc)
			}
		}
	}

	dfs(g.superEntry)
	for i := 0; i < n; i++ {
		if dfsnum[i] == 0 {
			dfs(ni(i))
		}
	}

	nodeByDFSNum := make([]ni, n+1)
	for i := 0; i < n; i++ {
		nodeByDFSNum[dfsnum[i]] = ni(i)
	}

	arena := newBracketArena(4 * len(g.edges))
	blists := make([]int, n) // arena head index of each node's bracket list
	cappingTo := make([][]*iEdge, n)
	hi := make([]int, n)
	infinite := n + 1
	for i := range hi {
		hi[i] = infinite
	}

	classCounter := 0
	newClass := func() int {
		classCounter++
		return classCounter
	}

	nextCappingID := len(g.edges)

	for _, node := range postorder {
		hi0 := infinite
		for _, eID := range backedgesFrom[node] {
			anc := edgeUpper[eID]
			if anc != -1 {
				if d := dfsnum[anc]; d < hi0 {
					hi0 = d
				}
			}
		}

		hi1, hi2 := infinite, infinite
		for _, c := range children[node] {
			v := hi[c]
			if v < hi1 {
				hi1, hi2 = v, hi1
			} else if v < hi2 {
				hi2 = v
			}
		}

		if hi0 < hi1 {
			hi[node] = hi0
		} else {
			hi[node] = hi1
		}

		bl := arena.newList()
		for _, c := range children[node] {
			arena.concat(bl, blists[c])
		}

		for _, cap := range cappingTo[node] {
			if cap.listNode != -1 {
				arena.delete(bl, cap.listNode)
				cap.listNode = -1
			}
		}

		for _, bID := range backedgesTo[node] {
			b := g.edges[bID]
			// A self-loop is listed in backedgesTo only and is never
			// pushed, so its listNode is still -1 here and only the class
			// assignment applies to it.
			if b.listNode != -1 {
				arena.delete(bl, b.listNode)
				b.listNode = -1
			}
			if b.classID == 0 {
				b.classID = newClass()
			}
		}

		for _, eID := range backedgesFrom[node] {
			e := g.edges[eID]
			e.listNode = arena.push(bl, e)
		}

		if hi2 < hi0 {
			upper := nodeByDFSNum[hi2]
			cap := &iEdge{id: nextCappingID, u: node, v: upper, kind: eCapping, listNode: -1}
			nextCappingID++
			cap.listNode = arena.push(bl, cap)
			cappingTo[upper] = append(cappingTo[upper], cap)
		}

		if parent[node] != -1 {
			treeEdge := g.edges[parentEdge[node]]
			top := arena.top(bl)
			if top == nil {
				return ErrNotStronglyConnected
			}
			size := arena.size(bl)
			if top.recentSize != size {
				top.recentSize = size
				top.recentClass = newClass()
			}
			treeEdge.classID = top.recentClass
			if top.recentSize == 1 && top.kind != eCapping {
				top.classID = treeEdge.classID
			}
		}

		blists[node] = bl
	}

	return nil
}
