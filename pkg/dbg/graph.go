package dbg

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// complement maps each valid nucleotide to its base-pair partner.
// Entries left at zero mark invalid input bytes.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ReverseComplement returns the complementary strand of s read in the
// opposite direction (A<->T, C<->G, then reversed). It returns ErrInvalidBase
// if s contains a character outside {A,C,G,T}.
func ReverseComplement(s string) (string, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := complement[s[len(s)-1-i]]
		if c == 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidBase, s[len(s)-1-i], len(s)-1-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// Graph is a de Bruijn graph over k-mers. Each distinct k-mer string maps to
// exactly one NodeID; an edge u->v exists iff v's k-mer was observed as the
// (k-1)-overlap successor of u's k-mer on either strand of some input read.
//
// The graph is built with AddSequence and afterwards mutated only by
// DeletePath. It is not safe for concurrent use.
type Graph struct {
	k     int
	nodes map[NodeID]*Node
	index map[string]NodeID // kmer -> id
	next  NodeID
}

// New creates an empty graph for k-mers of length k.
// Returns ErrInvalidK if k is not positive.
func New(k int) (*Graph, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return &Graph{
		k:     k,
		nodes: make(map[NodeID]*Node),
		index: make(map[string]NodeID),
	}, nil
}

// K returns the k-mer length the graph was built for.
func (g *Graph) K() int { return g.k }

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node with the given ID and true, or nil and false if the
// node does not exist (never created, or deleted by DeletePath).
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns the IDs of all live nodes in ascending order.
func (g *Graph) NodeIDs() []NodeID {
	return slices.Sorted(maps.Keys(g.nodes))
}

// AddSequence inserts every k+1 window of seq and of its reverse complement
// into the graph. Sequences shorter than k+1 are skipped silently - they
// carry no overlap information.
//
// Returns ErrInvalidBase if seq contains a character outside {A,C,G,T};
// validation happens before any insertion, so a rejected sequence leaves
// the graph unchanged.
//
// Counting convention: a k-mer's count is bumped once per window end it
// occupies, on both strands, matching the reference assembler. Interior
// k-mers of a long read are therefore counted twice per strand.
func (g *Graph) AddSequence(seq string) error {
	rc, err := ReverseComplement(seq)
	if err != nil {
		return err
	}
	if len(seq) < g.k+1 {
		return nil
	}
	for i := 0; i+g.k < len(seq); i++ {
		g.addArc(seq[i:i+g.k], seq[i+1:i+1+g.k])
		g.addArc(rc[i:i+g.k], rc[i+1:i+1+g.k])
	}
	return nil
}

// addNode ensures a node exists for the k-mer and bumps its count.
func (g *Graph) addNode(kmer string) NodeID {
	id, ok := g.index[kmer]
	if !ok {
		id = g.next
		g.next++
		g.index[kmer] = id
		g.nodes[id] = newNode(kmer)
	}
	g.nodes[id].count++
	return id
}

// addArc inserts the edge a->b, creating both nodes as needed.
// Re-inserting an existing edge only bumps the endpoint counts.
func (g *Graph) addArc(a, b string) {
	from := g.addNode(a)
	to := g.addNode(b)
	g.nodes[from].addChild(to)
}

// DeletePath permanently removes every node in path from the graph, along
// with every edge pointing at a removed node.
//
// Any PathFinder created before this call holds stale depths and best-child
// links and must be discarded; the next round starts from a fresh one.
func (g *Graph) DeletePath(path []NodeID) {
	if len(path) == 0 {
		return
	}
	removed := make(map[NodeID]struct{}, len(path))
	for _, id := range path {
		if n, ok := g.nodes[id]; ok {
			delete(g.index, n.kmer)
			delete(g.nodes, id)
			removed[id] = struct{}{}
		}
	}
	for _, n := range g.nodes {
		n.removeChildren(removed)
	}
}

// ConcatPath materializes a path into a contig string: the full k-mer of the
// first node followed by the last character of each subsequent node's k-mer.
// The result has length k + (len(path) - 1). An empty path yields "".
func (g *Graph) ConcatPath(path []NodeID) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(g.k + len(path) - 1)
	b.WriteString(g.nodes[path[0]].kmer)
	for _, id := range path[1:] {
		kmer := g.nodes[id].kmer
		b.WriteByte(kmer[len(kmer)-1])
	}
	return b.String()
}

// CountHistogram returns how many nodes were observed exactly i times, for
// i in [0, buckets). Observations at or beyond the last bucket are clamped
// into it. Useful for eyeballing coverage before assembly.
func (g *Graph) CountHistogram(buckets int) []int {
	hist := make([]int, buckets)
	if buckets == 0 {
		return hist
	}
	for _, n := range g.nodes {
		c := n.count
		if c >= buckets {
			c = buckets - 1
		}
		hist[c]++
	}
	return hist
}
