// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

// Package dot renders a computed program structure tree as Graphviz dot
// source: the flat control-flow graph, the region nesting tree on its
// own, or the flat graph clustered by region. It follows the functional-
// options Config/Option idiom used throughout this module.
package dot

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dcollins-dev/pst"
)

// CFG renders r's flat control-flow graph: one node per graph node, one
// edge per published Edge. Super-entry and super-exit are drawn as
// ordinary nodes labeled "Super entry" / "Super exit"; the synthetic
// back-edge from super-exit to super-entry is omitted unless IncludeBack
// is set.
func CFG[N comparable](r pst.PSTResult[N], opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeHead(w, cfg, "CFG")

	for _, n := range [2]N{r.SuperEntry, r.SuperExit} {
		fmt.Fprintf(w, "%s%s [label=%s];\n", cfg.Indent, quoteID(cfg.NodeID(n)), quote(nodeLabel(r, n)))
	}
	ids := sortedEdgeIDs(r)
	for _, id := range ids {
		e := r.Edges[id]
		if e.Kind == pst.KindBack && !cfg.IncludeBack {
			continue
		}
		writeEdgeLine(w, cfg, r, e)
	}
	writeTail(w)
	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PST renders r's region nesting tree: one node per region (the
// synthetic root plus every SESE region), one edge per parent-child
// relationship. Region nodes are labeled with their id and, for non-root
// regions, the class id shared by their entry and exit edges.
func PST[N comparable](r pst.PSTResult[N], opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeHead(w, cfg, "PST")

	ids := sortedRegionIDs(r)
	for _, id := range ids {
		region := r.Regions[id]
		fmt.Fprintf(w, "%s%s [label=%s];\n", cfg.Indent, regionNodeID(id), quote(regionLabel(r, region)))
	}
	for _, id := range ids {
		region := r.Regions[id]
		for _, child := range region.Children {
			fmt.Fprintf(w, "%s%s -> %s;\n", cfg.Indent, regionNodeID(id), regionNodeID(child))
		}
	}
	writeTail(w)
	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CFGWithRegions renders the flat control-flow graph with every node
// drawn inside a nested subgraph cluster for its innermost enclosing
// region, computed via pst.NodeMembership rather than re-deriving
// containment. Clusters nest following the region tree; deeper clusters
// are colored from a small fixed palette, cycling by nesting depth.
func CFGWithRegions[N comparable](r pst.PSTResult[N], opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeHead(w, cfg, "CFGWithRegions")

	membership := pst.NodeMembership(r)
	assigned := make(map[string]bool)

	var nodeOrder []N
	seen := make(map[N]bool)
	ids := sortedEdgeIDs(r)
	for _, id := range ids {
		e := r.Edges[id]
		for _, n := range [2]N{e.Src, e.Dst} {
			if !seen[n] {
				seen[n] = true
				nodeOrder = append(nodeOrder, n)
			}
		}
	}

	regionNodes := make(map[int][]N)
	for _, n := range nodeOrder {
		if !cfg.IncludeSuper && (n == r.SuperEntry || n == r.SuperExit) {
			continue
		}
		members := membership[n]
		innermost := deepestMember(r, members, cfg.IncludeRoot)
		regionNodes[innermost] = append(regionNodes[innermost], n)
	}

	writeClusters(w, cfg, r, 0, regionNodes, assigned, 0)

	for _, id := range ids {
		e := r.Edges[id]
		if e.Kind == pst.KindBack && !cfg.IncludeBack {
			continue
		}
		if !cfg.IncludeSuper && (e.Kind == pst.KindSuperEntry || e.Kind == pst.KindSuperExit) {
			continue
		}
		writeEdgeLine(w, cfg, r, e)
	}

	writeTail(w)
	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// deepestMember returns the region among members that is nested deepest
// in the region tree (the longest Parent chain up to the root), which is
// the node's innermost containing region; 0 when only the root contains it.
func deepestMember[N comparable](r pst.PSTResult[N], members []int, includeRoot bool) int {
	best, bestDepth := 0, 0
	for _, id := range members {
		depth := 0
		for p := r.Regions[id].Parent; p != nil; p = r.Regions[*p].Parent {
			depth++
		}
		if depth > bestDepth {
			best, bestDepth = id, depth
		}
	}
	if best == 0 && !includeRoot {
		return 0
	}
	return best
}

func writeClusters[N comparable](w *bufio.Writer, cfg Config, r pst.PSTResult[N], regionID int, regionNodes map[int][]N, assigned map[string]bool, depth int) {
	indent := strings.Repeat(cfg.Indent, depth+1)
	region, ok := r.Regions[regionID]
	if !ok {
		return
	}

	opened := regionID != 0 || cfg.IncludeRoot
	if opened {
		fmt.Fprintf(w, "%ssubgraph %s {\n", indent, clusterID(regionID))
		fmt.Fprintf(w, "%s%slabel=%s;\n", indent, cfg.Indent, quote(regionLabel(r, region)))
		fmt.Fprintf(w, "%s%sstyle=filled;\n", indent, cfg.Indent)
		fmt.Fprintf(w, "%s%scolor=%q;\n", indent, cfg.Indent, paletteColor(depth))
	}

	inner := indent
	if opened {
		inner = strings.Repeat(cfg.Indent, depth+2)
	}
	for _, n := range regionNodes[regionID] {
		id := cfg.NodeID(n)
		if assigned[id] {
			continue
		}
		assigned[id] = true
		fmt.Fprintf(w, "%s%s [label=%s];\n", inner, quoteID(id), quote(nodeLabel(r, n)))
	}

	childDepth := depth
	if opened {
		childDepth = depth + 1
	}
	children := append([]int(nil), region.Children...)
	sort.Ints(children)
	for _, child := range children {
		writeClusters(w, cfg, r, child, regionNodes, assigned, childDepth)
	}

	if opened {
		fmt.Fprintf(w, "%s}\n", indent)
	}
}

func newConfig(opts []Option) Config {
	cfg := Defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NodeID == nil {
		cfg.NodeID = defaultNodeID
	}
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	return cfg
}

func writeHead(w *bufio.Writer, cfg Config, name string) {
	fmt.Fprintf(w, "digraph %s {\n", name)
	for _, a := range cfg.GraphAttr {
		fmt.Fprintf(w, "%s%s;\n", cfg.Indent, fmtAttr(a))
	}
	if len(cfg.NodeAttr) > 0 {
		fmt.Fprintf(w, "%snode [%s];\n", cfg.Indent, fmtAttrList(cfg.NodeAttr))
	}
	if len(cfg.EdgeAttr) > 0 {
		fmt.Fprintf(w, "%sedge [%s];\n", cfg.Indent, fmtAttrList(cfg.EdgeAttr))
	}
}

func writeTail(w *bufio.Writer) {
	fmt.Fprint(w, "}\n")
}

func writeEdgeLine[N comparable](w *bufio.Writer, cfg Config, r pst.PSTResult[N], e pst.Edge[N]) {
	src := quoteID(cfg.NodeID(e.Src))
	dst := quoteID(cfg.NodeID(e.Dst))
	if !cfg.ShowEdgeLabels {
		fmt.Fprintf(w, "%s%s -> %s;\n", cfg.Indent, src, dst)
		return
	}
	fmt.Fprintf(w, "%s%s -> %s [label=%s];\n", cfg.Indent, src, dst, quote(edgeLabel(e)))
}

func nodeLabel[N comparable](r pst.PSTResult[N], n N) string {
	if n == r.SuperEntry {
		return "Super entry"
	}
	if n == r.SuperExit {
		return "Super exit"
	}
	return formatNodeID(n)
}

func edgeLabel[N comparable](e pst.Edge[N]) string {
	label := strconv.Itoa(e.ID) + ":" + strconv.Itoa(e.ClassID)
	if e.Kind != pst.KindOrig {
		label += "\n" + e.Kind.String()
	}
	return label
}

func regionLabel[N comparable](r pst.PSTResult[N], region pst.Region) string {
	if region.ID == r.Root {
		return "root"
	}
	classID := -1
	if region.EntryEdge != nil {
		if e, ok := r.Edges[*region.EntryEdge]; ok {
			classID = e.ClassID
		}
	}
	return fmt.Sprintf("R%d\nclass %d", region.ID, classID)
}

func sortedEdgeIDs[N comparable](r pst.PSTResult[N]) []int {
	ids := make([]int, 0, len(r.Edges))
	for id := range r.Edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedRegionIDs[N comparable](r pst.PSTResult[N]) []int {
	ids := make([]int, 0, len(r.Regions))
	for id := range r.Regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func regionNodeID(id int) string {
	return "R" + strconv.Itoa(id)
}

func clusterID(id int) string {
	return "cluster_R" + strconv.Itoa(id)
}

// regionPalette cycles by nesting depth, the same fixed small palette
// idea as the reference renderer's region color table.
var regionPalette = []string{
	"#dbe9f6", "#d9f2e6", "#fbe9d0", "#f3d9ec", "#e4e4f7", "#f7f0d0",
}

func paletteColor(depth int) string {
	return regionPalette[depth%len(regionPalette)]
}

func fmtAttr(a AttrVal) string {
	return fmt.Sprintf("%s=%s", a.Attr, quote(a.Val))
}

func fmtAttrList(attrs []AttrVal) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmtAttr(a)
	}
	return strings.Join(parts, ", ")
}

func formatNodeID(n any) string {
	return fmt.Sprintf("%v", n)
}

func quote(s string) string {
	return strconv.Quote(s)
}

func quoteID(s string) string {
	return strconv.Quote(s)
}
