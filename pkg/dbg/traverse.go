package dbg

import "fmt"

// visit colors for the iterative DFS. A gray node is on the active path;
// meeting one again means the graph has a cycle.
type color uint8

const (
	white color = iota // not yet visited
	gray               // on the current DFS path, depth pending
	black              // finished, depth memoized
)

// PathFinder computes longest downstream paths over a Graph. All traversal
// state (visit marks, memoized depths, best-child links) lives here rather
// than on the nodes, so the lifetime of the cache is exactly the lifetime
// of the PathFinder.
//
// A PathFinder is valid until the graph is next mutated. After DeletePath
// the memoized depths no longer reflect reachability - discard the finder
// and create a new one.
type PathFinder struct {
	g     *Graph
	color map[NodeID]color
	depth map[NodeID]int
	best  map[NodeID]NodeID // best-child link; absence means no children
}

// NewPathFinder creates a traversal context for one extraction round.
func NewPathFinder(g *Graph) *PathFinder {
	return &PathFinder{
		g:     g,
		color: make(map[NodeID]color, len(g.nodes)),
		depth: make(map[NodeID]int, len(g.nodes)),
		best:  make(map[NodeID]NodeID),
	}
}

// Depth returns the length of the longest path starting at id, counted in
// nodes (a node with no children has depth 1). Results are memoized, so
// repeated queries within one round are O(1) after the first visit.
//
// The traversal is an explicit-stack DFS: genome-scale graphs produce paths
// as long as the genome, which would exhaust the call stack if this
// recursed. Returns ErrCycle if the walk re-enters the active path.
func (p *PathFinder) Depth(root NodeID) (int, error) {
	if _, ok := p.g.nodes[root]; !ok {
		return 0, fmt.Errorf("unknown node %d", root)
	}
	if p.color[root] == black {
		return p.depth[root], nil
	}

	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		switch p.color[id] {
		case white:
			// First visit: mark in-progress and schedule children.
			p.color[id] = gray
			for _, child := range p.g.nodes[id].Children() {
				switch p.color[child] {
				case gray:
					return 0, fmt.Errorf("%w: k-mer %q reaches itself", ErrCycle, p.g.nodes[child].kmer)
				case white:
					stack = append(stack, child)
				}
			}
		case gray:
			// All children finished; fold their depths.
			stack = stack[:len(stack)-1]
			maxDepth := 0
			for _, child := range p.g.nodes[id].Children() {
				// Children iterate in ascending ID order, so on equal
				// depths the lowest ID wins.
				if d := p.depth[child]; d > maxDepth {
					maxDepth = d
					p.best[id] = child
				}
			}
			p.depth[id] = maxDepth + 1
			p.color[id] = black
		case black:
			// Duplicate stack entry from a diamond; already folded.
			stack = stack[:len(stack)-1]
		}
	}
	return p.depth[root], nil
}

// BestChild returns the child continuing the longest path from id, and
// false if id has no children (or has not been visited yet). Absence is a
// distinct state - there is no sentinel ID.
func (p *PathFinder) BestChild(id NodeID) (NodeID, bool) {
	child, ok := p.best[id]
	return child, ok
}

// LongestPath computes the depth of every node in the graph and returns the
// node sequence of the globally longest path. Ties - between roots and
// between equal-depth children - resolve to the lowest NodeID, so the result
// is deterministic for a given graph. An empty graph yields an empty path.
func (p *PathFinder) LongestPath() ([]NodeID, error) {
	var (
		maxDepth int
		maxID    NodeID
		found    bool
	)
	for _, id := range p.g.NodeIDs() {
		d, err := p.Depth(id)
		if err != nil {
			return nil, err
		}
		if d > maxDepth {
			maxDepth, maxID, found = d, id, true
		}
	}
	if !found {
		return nil, nil
	}

	path := make([]NodeID, 0, maxDepth)
	id := maxID
	for {
		path = append(path, id)
		child, ok := p.best[id]
		if !ok {
			return path, nil
		}
		id = child
	}
}
