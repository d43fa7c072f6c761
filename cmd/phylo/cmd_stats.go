package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file...]",
		Short: "Show the size and shape of trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readTrees(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "tree\tnodes\tleaves\theight\tmax degree\tbifurcating\tlength")
			var nodes, leaves int
			for i, t := range trees {
				b := newick.FromTree(t, t.Root(), newick.DefaultConverter())
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%t\t%g\n", i,
					humanize.Comma(int64(t.NodeCount())),
					humanize.Comma(int64(t.LeafCount())),
					t.Height(), maxDegree(t), b.IsBifurcating(), totalLength(t))
				nodes += t.NodeCount()
				leaves += t.LeafCount()
			}
			if len(trees) > 1 {
				fmt.Fprintf(tw, "all\t%s\t%s\t\t\t\t\n",
					humanize.Comma(int64(nodes)), humanize.Comma(int64(leaves)))
			}
			return tw.Flush()
		},
	}

	return cmd
}

func maxDegree(t *tree.DefaultTree) int {
	most := 0
	for n := 0; n < t.NodeCount(); n++ {
		most = max(most, t.Degree(n))
	}
	return most
}

func totalLength(t *tree.DefaultTree) float64 {
	sum := 0.0
	for e := 0; e < t.EdgeCount(); e++ {
		sum += t.Edge(e).Data.Length()
	}
	return sum
}
