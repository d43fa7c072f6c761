package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/spf13/cobra"
)

// openInput opens the named file, or standard input for "" and "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readTrees reads all trees of all named files in order, or of standard
// input if there are no names.
func readTrees(cmd *cobra.Command, names []string) ([]*tree.DefaultTree, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var all []*tree.DefaultTree
	for _, name := range names {
		in, err := openInput(cmd, name)
		if err != nil {
			return nil, err
		}
		trees, err := newick.NewReader(in).ReadAll()
		in.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(name), err)
		}
		all = append(all, trees...)
	}
	return all, nil
}

// readTree reads the first tree of the named file.
func readTree(cmd *cobra.Command, name string) (*tree.DefaultTree, error) {
	in, err := openInput(cmd, name)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	t, err := newick.NewReader(in).ReadTree()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: no tree in input", displayName(name))
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}
	return t, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

// findNode returns the node with the given name.
func findNode(t *tree.DefaultTree, name string) (int, error) {
	for n := 0; n < t.NodeCount(); n++ {
		if t.Node(n).Data.Name == name {
			return n, nil
		}
	}
	return -1, fmt.Errorf("no node named '%s'", name)
}

func label(d tree.DefaultNodeData) string {
	if d.Name == "" {
		return "N/A"
	}
	return d.Name
}

func leafName(d tree.DefaultNodeData) string { return d.Name }
