package assemble

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mwarzecha/weft/pkg/cache"
)

// Runner executes assembly runs with result caching.
// Both the CLI and the HTTP API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't keep
// graphs or results between runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Assemble runs the complete build -> extract -> stats pipeline with caching.
// The reads are content-addressed: identical reads with identical options hit
// the cache regardless of where they came from.
func (r *Runner) Assemble(ctx context.Context, seqs []string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.AssemblyKey(inputHash(seqs), cache.AssemblyKeyOpts{
		K:          opts.K,
		MaxContigs: opts.MaxContigs,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.CacheHit = true
				r.Logger.Info("assembly from cache",
					"contigs", cached.Stats.ContigCount,
					"n50", cached.Stats.N50)
				return &cached, nil
			}
			// Corrupt entry; fall through to recompute.
		}
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: build the graph from both strands of every read.
	buildStart := time.Now()
	g, err := Build(seqs, opts.K)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built graph",
		"k", opts.K,
		"reads", len(seqs),
		"nodes", g.NodeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 2: greedy longest-path extraction.
	extractStart := time.Now()
	contigs, err := Extract(g, opts.MaxContigs)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	result.Contigs = contigs
	result.Stats.ExtractTime = time.Since(extractStart)

	// Stage 3: quality statistics.
	s := computeStats(contigs)
	s.NodeCount = result.Stats.NodeCount
	s.BuildTime = result.Stats.BuildTime
	s.ExtractTime = result.Stats.ExtractTime
	result.Stats = s

	r.Logger.Info("extracted contigs",
		"contigs", s.ContigCount,
		"total_length", s.TotalLength,
		"n50", s.N50,
		"duration", s.ExtractTime)

	if data, err := json.Marshal(result); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLAssembly)
	}

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// inputHash content-addresses a read set. Reads are joined with a separator
// that cannot occur in a nucleotide string, so distinct read boundaries
// produce distinct hashes.
func inputHash(seqs []string) string {
	return cache.Hash([]byte(strings.Join(seqs, "\n")))
}
