package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mwarzecha/weft/pkg/dbg"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must carry a positive "k" and a "nodes" array; every k-mer must
// have length k over {A,C,G,T}, and every child reference must name a node
// in the file. Errors are wrapped with the offending node or edge.
//
// The returned graph is independent of r and behaves exactly like one built
// with AddSequence, including path extraction and deletion.
func ReadJSON(r io.Reader) (*dbg.Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	snap := make([]dbg.NodeSnapshot, len(data.Nodes))
	for i, n := range data.Nodes {
		snap[i] = dbg.NodeSnapshot{ID: n.ID, Kmer: n.Kmer, Count: n.Count, Children: n.Children}
	}
	return dbg.FromSnapshot(data.K, snap)
}

// ImportJSON reads the JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*dbg.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
