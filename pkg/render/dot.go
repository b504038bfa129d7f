// Package render exports de Bruijn graphs as Graphviz diagrams.
//
// This is a debugging aid for small inputs: a node per k-mer, an edge per
// (k-1)-overlap. Genome-scale graphs have millions of nodes and are not
// meaningfully renderable; the CLI caps the node count before calling in.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mwarzecha/weft/pkg/dbg"
)

// Options configures DOT output.
type Options struct {
	// Counts includes each k-mer's observation count in its label.
	Counts bool
}

// ToDOT converts a graph to Graphviz DOT format.
// Nodes are emitted in ascending ID order for deterministic output.
func ToDOT(g *dbg.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dbg {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	ids := g.NodeIDs()
	for _, id := range ids {
		n, _ := g.Node(id)
		label := n.Kmer()
		if opts.Counts {
			label = fmt.Sprintf("%s\\n×%d", n.Kmer(), n.Count())
		}
		fmt.Fprintf(&buf, "  n%d [label=\"%s\"];\n", id, label)
	}

	buf.WriteString("\n")
	for _, id := range ids {
		n, _ := g.Node(id)
		for _, child := range n.Children() {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, child)
		}
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

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
