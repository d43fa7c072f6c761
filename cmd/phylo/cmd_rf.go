package main

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/phylo/bipartition"
	"github.com/spf13/cobra"
)

func newRFCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "rf [file...]",
		Short: "Robinson-Foulds distances between trees",
		Long: `Read all trees from the given files (or stdin) and print the matrix of
Robinson-Foulds distances between them. All trees must have the same leaf
names.

Splits are computed for several trees at once; the number of trees handled
at the same time is taken from the [bipartition] section of the
configuration, or from --workers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readTrees(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = conf.Bipartition.Workers
			}
			sets, err := bipartition.ComputeAll(cmd.Context(), trees, leafName, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range sets {
				row := make([]string, len(sets))
				for j := range sets {
					d, err := bipartition.RobinsonFoulds(sets[i], sets[j])
					if err != nil {
						return fmt.Errorf("trees %d and %d: %w", i, j, err)
					}
					row[j] = fmt.Sprint(d)
				}
				fmt.Fprintln(out, strings.Join(row, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "trees to process at once (0 for all)")

	return cmd
}
