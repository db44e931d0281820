// Package moddot renders the module dependency graph of a template tree.
//
// The graph is built from module descriptors: each module is a node, and
// each <module name="..."/> entry under <dependencies> is an edge to that
// module. Dependencies pointing outside the scanned tree (JDK modules,
// provisioned-elsewhere layers) are rendered as external nodes.
package moddot

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/rdnovell/galleon-plugins/pkg/provision"
)

// Graph is a module dependency graph.
type Graph struct {
	// nodes maps module name to presence in the scanned tree.
	nodes map[string]bool
	edges []edge
}

type edge struct {
	from, to string
}

// Build constructs the dependency graph of the given templates. Templates
// that are not module descriptors are skipped.
func Build(templates []*provision.Template) *Graph {
	g := &Graph{nodes: make(map[string]bool)}
	for _, t := range templates {
		if !t.IsModule() {
			continue
		}
		name := t.Name()
		if name == "" {
			continue
		}
		g.nodes[name] = true
		for _, dep := range t.ModuleDependencies() {
			if _, ok := g.nodes[dep]; !ok {
				g.nodes[dep] = false
			}
			g.edges = append(g.edges, edge{from: name, to: dep})
		}
	}
	return g
}

// Modules returns the names of modules found in the scanned tree, sorted.
func (g *Graph) Modules() []string {
	var out []string
	for name, local := range g.nodes {
		if local {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ToDOT converts the graph to Graphviz DOT format. Output is stable for a
// given input: nodes and edges are emitted in sorted order.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph modules {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, name := range slices.Sorted(maps.Keys(g.nodes)) {
		attrs := []string{fmt.Sprintf("label=%q", name)}
		if !g.nodes[name] {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	edges := slices.Clone(g.edges)
	slices.SortFunc(edges, func(a, b edge) int {
		if a.from != b.from {
			return strings.Compare(a.from, b.from)
		}
		return strings.Compare(a.to, b.to)
	})
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
