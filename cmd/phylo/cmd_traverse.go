package main

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/phylo/tree"
	"github.com/spf13/cobra"
)

var orders = []string{"preorder", "postorder", "inorder", "levelorder", "eulertour"}

func newIterator(t *tree.DefaultTree, order string, start int) (tree.Iterator, error) {
	switch order {
	case "preorder":
		return tree.NewPreorder(t, start), nil
	case "postorder":
		return tree.NewPostorder(t, start), nil
	case "inorder":
		return tree.NewInorder(t, start), nil
	case "levelorder":
		return tree.NewLevelorder(t, start), nil
	case "eulertour":
		return tree.NewEulerTour(t, start), nil
	}
	return nil, fmt.Errorf("unknown order '%s', expected one of %s",
		order, strings.Join(orders, ", "))
}

func newTraverseCmd() *cobra.Command {
	var (
		order string
		from  string
	)

	cmd := &cobra.Command{
		Use:   "traverse [file...]",
		Short: "List the nodes of trees in traversal order",
		Long: `Print the names of the nodes of each tree in the order they are visited,
one tree per line. Unnamed nodes are shown as N/A.

Orders: preorder, postorder, inorder, levelorder and eulertour. With --from,
the traversal starts at the named node as if the tree were rooted there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readTrees(cmd, args)
			if err != nil {
				return err
			}
			for _, t := range trees {
				start := t.Root()
				if from != "" {
					if start, err = findNode(t, from); err != nil {
						return err
					}
				}
				it, err := newIterator(t, order, start)
				if err != nil {
					return err
				}
				var names []string
				for n := range tree.Nodes(it) {
					names = append(names, label(t.Node(n).Data))
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", "preorder", "traversal order")
	cmd.Flags().StringVar(&from, "from", "", "name of the node to start at")

	return cmd
}
