package dbg

import "errors"

var (
	// ErrInvalidK is returned by [New] when the k-mer length is not a
	// positive integer. The graph cannot be built with a bad k, so this
	// fails before any sequence is read.
	ErrInvalidK = errors.New("k-mer length must be positive")

	// ErrInvalidBase is returned by [ReverseComplement] and [Graph.AddSequence]
	// when a sequence contains a character outside {A,C,G,T}. The offending
	// sequence is rejected as a whole; the graph is left untouched.
	ErrInvalidBase = errors.New("invalid nucleotide")

	// ErrCycle is returned by [PathFinder.Depth] and [PathFinder.LongestPath]
	// when the traversal re-enters a node that is still on the active DFS
	// path. Reverse-complement insertion of palindromic k-mers can create
	// self-loops and short cycles; longest-path is undefined on such graphs,
	// so the traversal fails fast instead of guessing.
	ErrCycle = errors.New("graph contains a cycle")
)
