package dbg

import (
	"maps"
	"slices"
)

// NodeID identifies a node within one Graph. IDs are assigned in first-seen
// order during construction and are never reused, so they double as a
// deterministic tie-break key for traversals.
type NodeID int

// Node is a single distinct k-mer observed in the input.
// Nodes are created and owned by a Graph; the zero value is not usable.
type Node struct {
	kmer     string
	children map[NodeID]struct{}
	count    int
}

func newNode(kmer string) *Node {
	return &Node{
		kmer:     kmer,
		children: make(map[NodeID]struct{}),
	}
}

// Kmer returns the k-mer string this node represents.
func (n *Node) Kmer() string { return n.kmer }

// Count returns how often the k-mer was observed during construction,
// across both strands.
func (n *Node) Count() int { return n.count }

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.children) }

// HasChild reports whether an edge to the given node exists.
func (n *Node) HasChild(id NodeID) bool {
	_, ok := n.children[id]
	return ok
}

// Children returns the outgoing edge targets in ascending NodeID order.
// The slice is freshly allocated on every call.
func (n *Node) Children() []NodeID {
	return slices.Sorted(maps.Keys(n.children))
}

// addChild inserts an edge target. Inserting an existing target is a no-op.
func (n *Node) addChild(id NodeID) {
	n.children[id] = struct{}{}
}

// removeChildren drops every edge whose target is in the given set.
func (n *Node) removeChildren(targets map[NodeID]struct{}) {
	for id := range targets {
		delete(n.children, id)
	}
}
