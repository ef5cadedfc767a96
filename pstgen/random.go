// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

// Package pstgen generates small random directed graphs for the pst
// package's property-based tests, supplying the "for every graph"
// universal quantifier those tests need.
package pstgen

import (
	"fmt"
	"math/rand"

	"github.com/dcollins-dev/pst"
)

// Config controls the shape of a generated graph. Zero-valued Nodes,
// EdgeFactor and BackEdgeProb are replaced with reasonable defaults by
// RandomCFG; a zero ParallelProb means no edge is deliberately repeated.
type Config struct {
	Nodes int // number of nodes, named n0..n(Nodes-1)

	// EdgeFactor*Nodes edges are attempted in total; actual edge count may
	// be lower because candidates that land on a self-loop are rejected.
	EdgeFactor float64

	// BackEdgeProb is the probability, per attempted edge, of pointing it
	// from a higher-numbered node to a lower-numbered one instead of
	// forward — this is how loops get into the generated graph at all,
	// since a purely forward-only edge set is always acyclic.
	BackEdgeProb float64

	// ParallelProb is the probability of deliberately repeating the
	// previous edge instead of drawing a fresh one, to exercise parallel
	// (duplicate Out) edges the way scenario D6 does by hand.
	ParallelProb float64
}

func (c Config) withDefaults() Config {
	if c.Nodes <= 0 {
		c.Nodes = 8
	}
	if c.EdgeFactor <= 0 {
		c.EdgeFactor = 1.5
	}
	if c.BackEdgeProb <= 0 {
		c.BackEdgeProb = 0.15
	}
	return c
}

func nodeName(i int) string {
	return fmt.Sprintf("n%d", i)
}

// RandomCFG builds a random directed graph as a *pst.Adjacency[string],
// biased toward the shapes ComputePST needs to exercise: mostly-forward
// edges (so most of the graph is acyclic, like a real CFG's straight-line
// blocks) plus a smaller share of back edges (so natural loops appear)
// and occasional repeated edges (so parallel-arc handling gets covered).
// If r is nil, a fresh generator with the fixed seed 1 is used, so every
// such call returns the same graph for the same cfg.
func RandomCFG(cfg Config, r *rand.Rand) *pst.Adjacency[string] {
	cfg = cfg.withDefaults()
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	adj := pst.NewAdjacency[string]()
	for i := 0; i < cfg.Nodes; i++ {
		adj.Set(nodeName(i), pst.NodeEdges[string]{})
	}

	nEdges := int(cfg.EdgeFactor * float64(cfg.Nodes))
	var lastU, lastV string
	haveLast := false

	for k := 0; k < nEdges; k++ {
		if haveLast && r.Float64() < cfg.ParallelProb {
			adj.AddOut(lastU, lastV)
			continue
		}

		u := r.Intn(cfg.Nodes)
		var v int
		if r.Float64() < cfg.BackEdgeProb && u > 0 {
			v = r.Intn(u) // strictly smaller index: a back edge
		} else {
			v = u + 1 + r.Intn(max(1, cfg.Nodes-u-1))
			if v >= cfg.Nodes {
				v = cfg.Nodes - 1
			}
		}
		if u == v {
			continue
		}
		un, vn := nodeName(u), nodeName(v)
		adj.AddOut(un, vn)
		lastU, lastV, haveLast = un, vn, true
	}

	return adj
}
