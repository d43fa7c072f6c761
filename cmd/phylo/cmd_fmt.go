package main

import (
	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var (
		noNames    bool
		noLengths  bool
		noComments bool
		noTags     bool
		precision  int
	)

	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Re-print Newick trees",
		Long: `Read Newick trees and write them back in a uniform way, one tree per line.

If no file is provided, reads trees from stdin. Which fields are written is
taken from the [newick] section of the configuration, and can be changed with
flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readTrees(cmd, args)
			if err != nil {
				return err
			}

			w := newick.NewWriter(cmd.OutOrStdout())
			w.Options = conf.Newick.Options()
			if noNames {
				w.Options.PrintNames = false
			}
			if noLengths {
				w.Options.PrintBranchLengths = false
			}
			if noComments {
				w.Options.PrintComments = false
			}
			if noTags {
				w.Options.PrintTags = false
			}
			if cmd.Flags().Changed("precision") {
				w.Options.Precision = precision
			}
			return w.WriteAll(trees)
		},
	}

	cmd.Flags().BoolVar(&noNames, "no-names", false, "leave out node names")
	cmd.Flags().BoolVar(&noLengths, "no-lengths", false, "leave out branch lengths")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "leave out comments")
	cmd.Flags().BoolVar(&noTags, "no-tags", false, "leave out tags")
	cmd.Flags().IntVarP(&precision, "precision", "p", -1,
		"digits after the decimal point of branch lengths (-1 for exact)")

	return cmd
}
