package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarzecha/weft/pkg/assemble"
	"github.com/mwarzecha/weft/pkg/fasta"
)

// assembleOpts holds the command-line flags for the assemble command.
type assembleOpts struct {
	k          int    // k-mer length (0 = config/default)
	maxContigs int    // extraction bound (0 = config/default)
	output     string // output FASTA path (stdout if empty)
	configPath string // explicit config file
	noCache    bool   // disable the result cache
	refresh    bool   // recompute even on a cache hit
}

// newAssembleCmd creates the assemble command.
//
// Reads come from one or more FASTA files (or stdin with "-"); contigs are
// written as FASTA records labeled contig_0, contig_1, ... in extraction
// order.
func newAssembleCmd() *cobra.Command {
	var opts assembleOpts

	cmd := &cobra.Command{
		Use:   "assemble <reads.fasta>...",
		Short: "Assemble short reads into contigs",
		Long: `Assemble short DNA reads into contigs.

Builds a de Bruijn graph over k-mers from every read and its reverse
complement, then greedily extracts the longest paths as contigs until the
graph is exhausted or the contig bound is reached.

Examples:
  weft assemble reads.fasta                      # contigs to stdout
  weft assemble -k 25 -o contigs.fasta r1.fasta r2.fasta
  cat reads.fasta | weft assemble -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAssemble(c.Context(), &opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.k, "kmer", "k", 0, "k-mer length (default 25)")
	cmd.Flags().IntVar(&opts.maxContigs, "max-contigs", 0, "maximum contigs to extract (default 20)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output FASTA file (stdout if empty)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default weft.toml if present)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

func runAssemble(ctx context.Context, opts *assembleOpts, paths []string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.k == 0 {
		opts.k = cfg.K
	}
	if opts.maxContigs == 0 {
		opts.maxContigs = cfg.MaxContigs
	}

	seqs, err := readSequences(paths)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d reads from %d file(s)", len(seqs), len(paths))

	c, err := newCache(cfg.Cache, opts.noCache)
	if err != nil {
		return err
	}
	runner := assemble.NewRunner(c, nil, logger)
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinner(ctx, fmt.Sprintf("assembling %d reads (k=%d)", len(seqs), opts.k))
	spin.start()
	result, err := runner.Assemble(ctx, seqs, assemble.Options{
		K:          opts.k,
		MaxContigs: opts.maxContigs,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	spin.stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Assembled %d contigs", result.Stats.ContigCount))

	if err := writeContigs(result.Contigs, opts.output); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote %d contigs", len(result.Contigs))
		printFile(opts.output)
	}
	printStats(result.Stats.ContigCount, result.Stats.TotalLength, result.Stats.N50, result.CacheHit)

	return nil
}

// readSequences loads reads from FASTA files; "-" reads from stdin.
func readSequences(paths []string) ([]string, error) {
	var seqs []string
	for _, path := range paths {
		var (
			records []fasta.Record
			err     error
		)
		if path == "-" {
			records, err = fasta.Read(os.Stdin)
		} else {
			records, err = fasta.ReadFile(path)
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, fasta.Sequences(records)...)
	}
	return seqs, nil
}

// writeContigs writes contigs as FASTA to path, or stdout if path is empty.
func writeContigs(contigs []string, path string) error {
	if path == "" {
		return fasta.WriteContigs(os.Stdout, contigs)
	}
	return fasta.WriteContigsFile(path, contigs)
}
