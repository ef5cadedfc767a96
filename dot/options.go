// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package dot

// AttrVal represents the dot format concept of an attribute-value pair.
type AttrVal struct {
	Attr string
	Val  string
}

// Config holds options that control dot output. Generally you will not
// set members of a Config struct directly — there is an option function
// for each member; pass the option functions as optional arguments to
// CFG, PST, or CFGWithRegions. A Config starts from Defaults, then each
// Option in order is applied on top of it.
type Config struct {
	Indent         string
	GraphAttr      []AttrVal
	NodeAttr       []AttrVal
	EdgeAttr       []AttrVal
	IncludeBack    bool
	IncludeSuper   bool
	IncludeRoot    bool
	ShowEdgeLabels bool
	NodeID         func(n any) string
}

// Defaults holds the package default Config.
var Defaults = Config{
	Indent:         "  ",
	ShowEdgeLabels: true,
	NodeID:         defaultNodeID,
}

// Option is a function that modifies a Config; pass one or more to CFG,
// PST, or CFGWithRegions.
type Option func(*Config)

// Indent specifies an indent string for the body of the dot output. The
// default is two spaces.
func Indent(i string) Option {
	return func(c *Config) { c.Indent = i }
}

// GraphAttr adds a dot format graph attribute, updating the value of the
// last matching attribute if one already exists.
func GraphAttr(attr, val string) Option {
	return func(c *Config) { c.GraphAttr = appendAttr(c.GraphAttr, attr, val) }
}

// NodeAttr adds a dot format default node attribute.
func NodeAttr(attr, val string) Option {
	return func(c *Config) { c.NodeAttr = appendAttr(c.NodeAttr, attr, val) }
}

// EdgeAttr adds a dot format default edge attribute.
func EdgeAttr(attr, val string) Option {
	return func(c *Config) { c.EdgeAttr = appendAttr(c.EdgeAttr, attr, val) }
}

// IncludeBack specifies whether the synthetic super_exit -> super_entry
// back-edge is included in CFG/CFGWithRegions output. Default false: the
// back-edge exists to close the augmented graph for classification, not
// to be read as part of the control-flow picture.
func IncludeBack(b bool) Option {
	return func(c *Config) { c.IncludeBack = b }
}

// IncludeSuper specifies whether the synthetic super-entry/super-exit
// nodes are drawn in CFGWithRegions. Default false.
func IncludeSuper(b bool) Option {
	return func(c *Config) { c.IncludeSuper = b }
}

// IncludeRoot specifies whether CFGWithRegions draws an explicit cluster
// for the synthetic root region (id 0). Default false: root's children
// are drawn directly at the top level.
func IncludeRoot(b bool) Option {
	return func(c *Config) { c.IncludeRoot = b }
}

// ShowEdgeLabels specifies whether edges are labeled with
// "id:classID" (plus the edge kind, for synthetic edges). Default true.
func ShowEdgeLabels(b bool) Option {
	return func(c *Config) { c.ShowEdgeLabels = b }
}

// NodeID specifies a function to render a node identifier as dot text.
// The default formats with %v.
func NodeID(f func(n any) string) Option {
	return func(c *Config) { c.NodeID = f }
}

func defaultNodeID(n any) string {
	return formatNodeID(n)
}

func appendAttr(attrs []AttrVal, attr, val string) []AttrVal {
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Attr == attr {
			attrs[i].Val = val
			return attrs
		}
	}
	return append(attrs, AttrVal{attr, val})
}
