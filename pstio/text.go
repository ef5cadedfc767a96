// Copyright 2018 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package pstio reads and writes graphs of named nodes in the "Names"
// text format: one arc per line, a from-name and a to-name separated by
// whitespace (or a custom delimiter), blank lines ignored, and an
// optional end-of-line comment marker. It reworks a graph package's
// ReadArcNames/WriteArcNames to produce and consume a
// *pst.Adjacency[string] instead of an AdjacencyList plus parallel
// name/NI tables.
package pstio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dcollins-dev/pst"
)

// Text holds the formatting options for ReadArcNames and WriteArcNames.
// The zero value reads/writes whitespace-delimited arcs and strips no
// comments; NewText returns the same settings plus "//" end-of-line
// comments.
type Text struct {
	Delim   string // empty means "any run of whitespace"
	Comment string // empty disables comment stripping
}

// NewText returns a Text with conventional defaults: "//" comments,
// whitespace-delimited fields.
func NewText() *Text {
	return &Text{Comment: "//"}
}

// ReadArcNames reads one arc per line of r, where a line is a from-name
// and a to-name. An empty name is rejected. ReadArcNames reads to EOF; a
// missing trailing newline on the last line is tolerated.
func (t Text) ReadArcNames(r io.Reader) (*pst.Adjacency[string], error) {
	adj := pst.NewAdjacency[string]()
	index := func(s string) int { return strings.Index(s, t.Delim) }
	if t.Delim == "" {
		index = func(s string) int { return strings.IndexFunc(s, unicode.IsSpace) }
	}

	b := bufio.NewReader(r)
	for line := 1; ; line++ {
		s, err := b.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("pstio: line %d: %w", line, err)
			}
			if s == "" {
				return adj, nil
			}
			// allow a final line with no trailing newline
		}
		if t.Comment != "" {
			if i := strings.Index(s, t.Comment); i >= 0 {
				s = s[:i]
			}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		i := index(s)
		if i < 0 {
			return nil, fmt.Errorf("pstio: line %d: delimiter required between from-name and to-name", line)
		}
		fromName := strings.TrimSpace(s[:i])
		toName := strings.TrimSpace(s[i+len(t.Delim):])
		if fromName == "" || toName == "" {
			return nil, fmt.Errorf("pstio: line %d: blank node name not allowed", line)
		}
		adj.AddOut(fromName, toName)
		if err == io.EOF {
			return adj, nil
		}
	}
}

// WriteArcNames writes one arc per line of adj's declared Out edges, a
// from-name and to-name separated by a single space (or delim, if set).
// Isolated nodes with no Out edges produce no output line.
func (t Text) WriteArcNames(adj *pst.Adjacency[string], w io.Writer) (int, error) {
	delim := t.Delim
	if delim == "" {
		delim = " "
	}
	b := bufio.NewWriter(w)
	n := 0
	for _, node := range adj.Nodes() {
		edges, _ := adj.Get(node)
		for _, dst := range edges.Out {
			c, err := io.WriteString(b, node)
			n += c
			if err != nil {
				return n, err
			}
			c, err = io.WriteString(b, delim)
			n += c
			if err != nil {
				return n, err
			}
			c, err = io.WriteString(b, dst)
			n += c
			if err != nil {
				return n, err
			}
			if err := b.WriteByte('\n'); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, b.Flush()
}
