package assemble

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mwarzecha/weft/pkg/cache"
	"github.com/mwarzecha/weft/pkg/dbg"
)

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.K != DefaultK {
		t.Errorf("K = %d, want %d", opts.K, DefaultK)
	}
	if opts.MaxContigs != DefaultMaxContigs {
		t.Errorf("MaxContigs = %d, want %d", opts.MaxContigs, DefaultMaxContigs)
	}
	if opts.Logger == nil {
		t.Error("Logger must default to a non-nil logger")
	}

	// Idempotent: a second pass must not change anything.
	k, m := opts.K, opts.MaxContigs
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.K != k || opts.MaxContigs != m {
		t.Errorf("defaults changed on second pass: K=%d MaxContigs=%d", opts.K, opts.MaxContigs)
	}
}

func TestOptionsNegativeK(t *testing.T) {
	opts := Options{K: -3}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, dbg.ErrInvalidK) {
		t.Errorf("error = %v, want ErrInvalidK", err)
	}
}

func TestBuildAndExtractRoundTrip(t *testing.T) {
	g, err := Build([]string{"AACCGGTT"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 5 {
		t.Fatalf("NodeCount = %d, want 5", g.NodeCount())
	}

	contigs, err := Extract(g, 20)
	if err != nil {
		t.Fatal(err)
	}
	// The read is its own reverse complement, so one contig recovers it and
	// exhausts the graph.
	if len(contigs) != 1 || contigs[0] != "AACCGGTT" {
		t.Fatalf("contigs = %v, want [AACCGGTT]", contigs)
	}
	if g.NodeCount() != 0 {
		t.Errorf("graph not consumed: %d nodes remain", g.NodeCount())
	}
}

func TestBuildInvalidSequence(t *testing.T) {
	if _, err := Build([]string{"ACGTACGT", "ACGNACGT"}, 4); !errors.Is(err, dbg.ErrInvalidBase) {
		t.Errorf("error = %v, want ErrInvalidBase", err)
	}
}

func TestExtractEmptyGraph(t *testing.T) {
	g, err := Build(nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	contigs, err := Extract(g, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(contigs) != 0 {
		t.Errorf("contigs = %v, want empty", contigs)
	}
}

func TestExtractRespectsMaxContigs(t *testing.T) {
	// Two disjoint chains (each read plus its reverse complement strand)
	// give at least two extractable paths, but the bound stops at one.
	g, err := Build([]string{"ACGATT", "TTGACA"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	contigs, err := Extract(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(contigs) != 1 {
		t.Fatalf("len(contigs) = %d, want 1", len(contigs))
	}
	if g.NodeCount() == 0 {
		t.Error("bounded extraction should leave nodes behind")
	}
}

func TestExtractPropagatesCycle(t *testing.T) {
	g, err := Build([]string{"AAAAA"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(g, 20); !errors.Is(err, dbg.ErrCycle) {
		t.Errorf("error = %v, want ErrCycle", err)
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRunnerAssemble(t *testing.T) {
	r := NewRunner(nil, nil, discardLogger())
	defer r.Close()

	res, err := r.Assemble(context.Background(), []string{"AACCGGTT"}, Options{K: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.RunID == "" {
		t.Error("RunID must be set")
	}
	if res.CacheHit {
		t.Error("first run must not be a cache hit")
	}
	if len(res.Contigs) != 1 || res.Contigs[0] != "AACCGGTT" {
		t.Fatalf("contigs = %v, want [AACCGGTT]", res.Contigs)
	}
	if res.Stats.N50 != 8 {
		t.Errorf("N50 = %d, want 8", res.Stats.N50)
	}
	if res.Stats.TotalLength != 8 {
		t.Errorf("TotalLength = %d, want 8", res.Stats.TotalLength)
	}
	if res.Stats.NodeCount != 5 {
		t.Errorf("NodeCount = %d, want 5", res.Stats.NodeCount)
	}
}

func TestRunnerCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, discardLogger())
	defer r.Close()

	ctx := context.Background()
	seqs := []string{"AACCGGTT"}
	opts := Options{K: 4}

	first, err := r.Assemble(ctx, seqs, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Fatal("first run must miss the cache")
	}

	second, err := r.Assemble(ctx, seqs, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Fatal("second identical run must hit the cache")
	}
	if second.RunID != first.RunID {
		t.Errorf("cached RunID = %q, want %q", second.RunID, first.RunID)
	}
	if len(second.Contigs) != 1 || second.Contigs[0] != "AACCGGTT" {
		t.Errorf("cached contigs = %v, want [AACCGGTT]", second.Contigs)
	}

	// Refresh forces recomputation and a new run id.
	opts.Refresh = true
	third, err := r.Assemble(ctx, seqs, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refreshed run must not be a cache hit")
	}
	if third.RunID == first.RunID {
		t.Error("refreshed run must get a fresh RunID")
	}
}

func TestRunnerDistinctOptionsMiss(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, discardLogger())
	defer r.Close()

	ctx := context.Background()
	seqs := []string{"AACCGGTT"}

	if _, err := r.Assemble(ctx, seqs, Options{K: 4}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Assemble(ctx, seqs, Options{K: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("different k must not share a cache entry")
	}
}

func TestInputHashBoundaries(t *testing.T) {
	// "AC","GT" and "ACG","T" concatenate identically; the hash must not.
	if inputHash([]string{"AC", "GT"}) == inputHash([]string{"ACG", "T"}) {
		t.Error("inputHash must distinguish read boundaries")
	}
	if inputHash([]string{"AC", "GT"}) != inputHash([]string{"AC", "GT"}) {
		t.Error("inputHash must be deterministic")
	}
}
