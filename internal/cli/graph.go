package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwarzecha/weft/pkg/assemble"
	"github.com/mwarzecha/weft/pkg/dbg"
	"github.com/mwarzecha/weft/pkg/fasta"
	weftio "github.com/mwarzecha/weft/pkg/io"
	"github.com/mwarzecha/weft/pkg/render"
)

// maxRenderNodes caps graph diagrams. Beyond this the drawing is unreadable
// and Graphviz layout time explodes. JSON export has no such limit.
const maxRenderNodes = 2000

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	k         int
	format    string // dot, svg, or json
	output    string
	counts    bool
	histogram bool
}

// newGraphCmd creates the graph command for inspecting the k-mer graph.
// It renders the graph as DOT or SVG, exports it as JSON, or prints the
// k-mer count histogram.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <reads.fasta|graph.json>",
		Short: "Export the de Bruijn graph for inspection",
		Long: `Export the de Bruijn graph built from a read file.

Intended for small inputs: each k-mer becomes a node, each (k-1)-overlap an
edge. Use --histogram to print the k-mer observation-count distribution
instead of a diagram. A .json input is treated as a previously exported
graph and loaded directly, skipping the build.

Examples:
  weft graph reads.fasta --format dot
  weft graph reads.fasta -k 4 --format svg -o graph.svg
  weft graph reads.fasta -k 4 --format json -o graph.json
  weft graph graph.json --format svg -o graph.svg
  weft graph reads.fasta --histogram`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGraph(&opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.k, "kmer", "k", assemble.DefaultK, "k-mer length")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot, svg, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "include observation counts in node labels")
	cmd.Flags().BoolVar(&opts.histogram, "histogram", false, "print the count histogram instead of a diagram")

	return cmd
}

func runGraph(opts *graphOpts, path string) error {
	g, err := loadGraph(opts, path)
	if err != nil {
		return err
	}

	if opts.histogram {
		for count, nodes := range g.CountHistogram(10) {
			printKeyValue(fmt.Sprintf("count %d", count), fmt.Sprintf("%d", nodes))
		}
		return nil
	}

	var data []byte
	switch opts.format {
	case "json":
		var b strings.Builder
		if err := weftio.WriteJSON(g, &b); err != nil {
			return err
		}
		data = []byte(b.String())
	case "dot", "svg":
		if g.NodeCount() > maxRenderNodes {
			return fmt.Errorf("graph has %d nodes (limit %d); rendering is meant for small inputs", g.NodeCount(), maxRenderNodes)
		}
		dot := render.ToDOT(g, render.Options{Counts: opts.counts})
		if opts.format == "dot" {
			data = []byte(dot)
		} else {
			data, err = render.RenderSVG(dot)
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, json)", opts.format)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}

// loadGraph builds the graph from a FASTA read file, or loads a previously
// exported .json graph directly.
func loadGraph(opts *graphOpts, path string) (*dbg.Graph, error) {
	if strings.HasSuffix(path, ".json") {
		return weftio.ImportJSON(path)
	}
	records, err := fasta.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return assemble.Build(fasta.Sequences(records), opts.k)
}
