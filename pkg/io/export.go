// Package io provides JSON import and export for de Bruijn graphs.
//
// The format is a node-link object carrying everything needed to rebuild the
// graph without re-reading the input FASTA:
//
//	{
//	  "k": 4,
//	  "nodes": [
//	    {"id": 0, "kmer": "AACC", "count": 2, "children": [1]},
//	    {"id": 1, "kmer": "ACCG", "count": 4}
//	  ]
//	}
//
// Exporting after construction and importing later produces an identical
// graph, so expensive builds over large read sets can be rendered or
// inspected repeatedly.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mwarzecha/weft/pkg/dbg"
)

type graphJSON struct {
	K     int        `json:"k"`
	Nodes []nodeJSON `json:"nodes"`
}

type nodeJSON struct {
	ID       dbg.NodeID   `json:"id"`
	Kmer     string       `json:"kmer"`
	Count    int          `json:"count,omitempty"`
	Children []dbg.NodeID `json:"children,omitempty"`
}

// WriteJSON encodes a graph as JSON and writes it to w.
// Nodes and edges are emitted in ascending ID order, so output is
// deterministic and can be re-imported with [ReadJSON].
func WriteJSON(g *dbg.Graph, w io.Writer) error {
	snap := g.Snapshot()
	out := graphJSON{K: g.K(), Nodes: make([]nodeJSON, len(snap))}
	for i, s := range snap {
		out.Nodes[i] = nodeJSON{ID: s.ID, Kmer: s.Kmer, Count: s.Count, Children: s.Children}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
func ExportJSON(g *dbg.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
