package dbg

import "fmt"

// NodeSnapshot is one node of a serialized graph.
type NodeSnapshot struct {
	ID       NodeID
	Kmer     string
	Count    int
	Children []NodeID
}

// Snapshot returns every live node in ascending ID order, with children in
// ascending ID order. Together with K it captures the full graph state.
func (g *Graph) Snapshot() []NodeSnapshot {
	ids := g.NodeIDs()
	out := make([]NodeSnapshot, len(ids))
	for i, id := range ids {
		n := g.nodes[id]
		out[i] = NodeSnapshot{
			ID:       id,
			Kmer:     n.kmer,
			Count:    n.count,
			Children: n.Children(),
		}
	}
	return out
}

// FromSnapshot rebuilds a graph from a snapshot previously taken with
// Snapshot (typically after a JSON round trip).
//
// Every k-mer must have length k over {A,C,G,T}, IDs and k-mers must be
// unique, and every child reference must name a node in the snapshot.
func FromSnapshot(k int, nodes []NodeSnapshot) (*Graph, error) {
	g, err := New(k)
	if err != nil {
		return nil, err
	}

	for _, s := range nodes {
		if len(s.Kmer) != k {
			return nil, fmt.Errorf("node %d: k-mer %q has length %d, want %d", s.ID, s.Kmer, len(s.Kmer), k)
		}
		for i := 0; i < len(s.Kmer); i++ {
			if complement[s.Kmer[i]] == 0 {
				return nil, fmt.Errorf("node %d: %w: %q at position %d", s.ID, ErrInvalidBase, s.Kmer[i], i)
			}
		}
		if _, ok := g.nodes[s.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %d", s.ID)
		}
		if _, ok := g.index[s.Kmer]; ok {
			return nil, fmt.Errorf("duplicate k-mer %q", s.Kmer)
		}
		n := newNode(s.Kmer)
		n.count = s.Count
		g.nodes[s.ID] = n
		g.index[s.Kmer] = s.ID
		if s.ID >= g.next {
			g.next = s.ID + 1
		}
	}

	for _, s := range nodes {
		for _, child := range s.Children {
			if _, ok := g.nodes[child]; !ok {
				return nil, fmt.Errorf("edge %d->%d: unknown target node", s.ID, child)
			}
			g.nodes[s.ID].addChild(child)
		}
	}

	return g, nil
}
