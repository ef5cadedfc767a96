// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

// Package pst computes the Program Structure Tree of a directed graph.
//
// The Program Structure Tree (PST) is the hierarchical decomposition of a
// control-flow graph into Single-Entry Single-Exit (SESE) regions, nested
// by containment. A SESE region is a graph fragment with exactly one entry
// edge and one exit edge such that every path from the entry enters via
// that edge and every path to the exit leaves via that edge.
//
// The package accepts an arbitrary directed graph keyed by a caller-supplied
// comparable node type: multiple entries, multiple exits, irreducible
// cycles, and unreachable nodes are all fine. It augments the graph with a
// synthetic super-entry and super-exit, classifies every edge into a
// cycle-equivalence class using the linear-time Johnson-Pearson-Pingali
// algorithm (undirected DFS with bracket lists and capping edges), pairs
// class members in DFS-edge order into candidate regions, and resolves the
// canonical parent-child nesting using edge-split dominance.
//
// Terminology
//
// This package follows the source paper's terms. A "region" is bounded by
// an entry edge and an exit edge, not by nodes. Two edges are
// "cycle-equivalent" when every simple cycle of the undirected augmented
// graph contains both of them or neither. The "edge-split graph" replaces
// every edge u->v with u->e->v so that node-based dominator algorithms can
// express edge-to-edge dominance.
//
// Representation
//
// Internally, nodes are assigned dense zero-based indices (type ni) so
// that the augmented graph and the edge-split graph can both be
// represented as slices of slices, the way a hand-written adjacency list
// normally is. None of that is visible to callers: the public API takes
// and returns the caller's own node type.
//
// Scope
//
// There is no source-code-to-CFG extraction here; the input is already an
// abstract adjacency map. There is no interprocedural analysis, and a
// computed PSTResult is never mutated after it is returned. Rendering
// (DOT output, layout, styling) lives in the sibling dot package.
package pst
