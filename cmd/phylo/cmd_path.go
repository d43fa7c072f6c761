package main

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/phylo/tree"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Show the path between two nodes",
		Long: `Print the nodes on the path between two named nodes of a tree, and the
sum of the branch lengths along it. The lowest common ancestor of the two
nodes is marked with a '*'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTree(cmd, file)
			if err != nil {
				return err
			}
			a, err := findNode(t, args[0])
			if err != nil {
				return err
			}
			b, err := findNode(t, args[1])
			if err != nil {
				return err
			}

			var (
				names  []string
				length float64
			)
			p := tree.NewPath(t, a, b)
			for p.Next() {
				name := label(t.Node(p.Node()).Data)
				if p.IsLCA() {
					name += "*"
				}
				names = append(names, name)
				if e := p.Edge(); e >= 0 {
					length += t.Edge(e).Data.Length()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "edges: %d length: %g\n", p.Len()-1, length)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file to read the tree from (default stdin)")

	return cmd
}
