package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwarzecha/weft/pkg/fasta"
	"github.com/mwarzecha/weft/pkg/stats"
)

// newStatsCmd creates the stats command, which reports assembly quality
// statistics over an existing contig FASTA file.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <contigs.fasta>",
		Short: "Report N50 and related statistics for a contig file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			records, err := fasta.ReadFile(args[0])
			if err != nil {
				return err
			}

			lengths := stats.Lengths(fasta.Sequences(records))
			n50, err := stats.N50(lengths)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			l50, _ := stats.L50(lengths)

			printKeyValue("contigs", fmt.Sprintf("%d", len(lengths)))
			printKeyValue("total bases", fmt.Sprintf("%d", stats.Total(lengths)))
			printKeyValue("N50", fmt.Sprintf("%d", n50))
			printKeyValue("L50", fmt.Sprintf("%d", l50))
			return nil
		},
	}
}
