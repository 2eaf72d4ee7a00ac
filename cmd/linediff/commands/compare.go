package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"linediff/internal/domain"
)

var (
	output string
	labelA string
	labelB string
)

// compare <fileA> <fileB>: classify differences and export the CSV bundle.
func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Classify line differences between two files and export a CSV bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.CompareRequest{
				PathA:  args[0],
				PathB:  args[1],
				Output: output,
				LabelA: labelA,
				LabelB: labelB,
			}
			if req.Output == "" {
				req.Output = cfg.Output
			}
			if req.LabelA == "" {
				req.LabelA = cfg.LabelA
			}
			if req.LabelB == "" {
				req.LabelB = cfg.LabelB
			}

			if _, err := wire.Comparer.Run(req); err != nil {
				return err
			}
			fmt.Printf("Results written to %s\n", req.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archive path (default comparison_results.zip)")
	cmd.Flags().StringVar(&labelA, "label-a", "", "display name for the first file")
	cmd.Flags().StringVar(&labelB, "label-b", "", "display name for the second file")
	return cmd
}
