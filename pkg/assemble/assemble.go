// Package assemble orchestrates contig extraction over a de Bruijn graph.
//
// The package has two layers. The bottom layer is a pair of pure functions,
// [Build] and [Extract], that construct a graph from reads and greedily pull
// contigs out of it. The top layer is a [Runner] that wraps them into a
// build -> extract -> stats pipeline with caching, structured logging, and
// timing - the shape shared by the CLI and the HTTP API.
package assemble

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwarzecha/weft/pkg/dbg"
	"github.com/mwarzecha/weft/pkg/stats"
)

// Defaults for assembly parameters. K matches the reference assembler's
// baseline for short-read data.
const (
	DefaultK          = 25
	DefaultMaxContigs = 20
)

// Options configures one assembly run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// K is the k-mer length. Reads shorter than K+1 are skipped.
	K int `json:"k,omitempty"`

	// MaxContigs bounds how many contigs are extracted. Extraction stops
	// early once the graph is exhausted.
	MaxContigs int `json:"max_contigs,omitempty"`

	// Refresh bypasses the result cache.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives progress events. Defaults to a discarding logger.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent. Returns dbg.ErrInvalidK for a negative K; a zero K
// means "use the default".
func (o *Options) ValidateAndSetDefaults() error {
	if o.K < 0 {
		return fmt.Errorf("%w: got %d", dbg.ErrInvalidK, o.K)
	}
	if o.K == 0 {
		o.K = DefaultK
	}
	if o.MaxContigs <= 0 {
		o.MaxContigs = DefaultMaxContigs
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of one assembly run.
type Result struct {
	// RunID uniquely identifies this run in logs and API responses.
	RunID string `json:"run_id"`

	// Contigs in extraction order. The first contig was the longest walk
	// at the time of its extraction; that ordering is an observed property,
	// not a guarantee, since deleting a path can lengthen what remains.
	Contigs []string `json:"contigs"`

	// Stats contains sizes, the N50 statistic, and stage timings.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit,omitempty"`
}

// Stats describes an assembly run.
type Stats struct {
	NodeCount   int           `json:"node_count"`
	ContigCount int           `json:"contig_count"`
	TotalLength int           `json:"total_length"`
	N50         int           `json:"n50"`
	BuildTime   time.Duration `json:"build_time"`
	ExtractTime time.Duration `json:"extract_time"`
}

// Build constructs a de Bruijn graph from the given reads.
// Every read is inserted on both strands; reads shorter than k+1 are
// skipped. Returns dbg.ErrInvalidK or dbg.ErrInvalidBase on bad input.
func Build(seqs []string, k int) (*dbg.Graph, error) {
	g, err := dbg.New(k)
	if err != nil {
		return nil, err
	}
	for i, seq := range seqs {
		if err := g.AddSequence(seq); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
	}
	return g, nil
}

// Extract greedily pulls up to maxContigs contigs out of the graph. Each
// round finds the longest remaining path with a fresh PathFinder,
// materializes it, and deletes it from the graph before the next round.
// Extraction stops early when the graph is exhausted; an empty graph yields
// an empty slice without error.
//
// The graph is consumed: after Extract returns, the extracted paths are
// gone from g.
func Extract(g *dbg.Graph, maxContigs int) ([]string, error) {
	var contigs []string
	for range maxContigs {
		// Deletion invalidates all memoized depths, so every round gets
		// its own traversal context.
		path, err := dbg.NewPathFinder(g).LongestPath()
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			break
		}
		contigs = append(contigs, g.ConcatPath(path))
		g.DeletePath(path)
	}
	return contigs, nil
}

// computeStats derives run statistics from the contig set. N50 is left at
// zero when no contigs were produced.
func computeStats(contigs []string) Stats {
	s := Stats{ContigCount: len(contigs)}
	lengths := stats.Lengths(contigs)
	s.TotalLength = stats.Total(lengths)
	if n50, err := stats.N50(lengths); err == nil {
		s.N50 = n50
	}
	return s
}
