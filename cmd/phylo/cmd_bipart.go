package main

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/phylo/bipartition"
	"github.com/spf13/cobra"
)

func newBipartCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "bipart [file...]",
		Short: "List the splits of trees",
		Long: `Print the splits of the leaves of each tree, as a bit string in order of the
sorted leaf names followed by the leaves on the side without the first leaf.

Only splits with at least two leaves on each side are shown, unless --all is
given, in which case every edge is listed with the leaves below it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readTrees(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, t := range trees {
				s, err := bipartition.Compute(t, leafName)
				if err != nil {
					return fmt.Errorf("tree %d: %w", i, err)
				}
				fmt.Fprintf(out, "Tree %d: %s\n", i, strings.Join(s.Leaves(), " "))
				if all {
					for e := 0; e < s.Len(); e++ {
						below := s.Edge(e)
						fmt.Fprintf(out, "  %s  %s\n", below,
							strings.Join(s.Names(below), " "))
					}
					continue
				}
				for _, split := range s.Splits() {
					fmt.Fprintf(out, "  %s  %s\n", split,
						strings.Join(s.Names(split), " "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list the leaves below every edge")

	return cmd
}
