// Package dbg implements the de Bruijn graph at the heart of the assembler.
//
// A Graph is built once from raw nucleotide reads: every window of length
// k+1 on a read (and on its reverse complement) contributes two k-mer nodes
// and one overlap edge. After construction the graph is only mutated by
// DeletePath, which removes the nodes of an extracted contig.
//
// Longest-path queries go through a PathFinder, a traversal context that
// owns all memoized state (visited marks, depths, best-child links) for a
// single extraction round. Because DeletePath changes reachability, a
// PathFinder must never be reused across a deletion - create a fresh one
// per round.
package dbg
