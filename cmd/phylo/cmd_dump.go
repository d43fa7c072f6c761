package main

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var broker bool

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Show trees as indented node lists",
		Long: `Print every node of each tree on its own line, indented by depth.

With --broker, shows the elements as read from the text instead, with the
number of children of each element.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			in, err := openInput(cmd, name)
			if err != nil {
				return err
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			r := newick.NewReader(in)
			for i := 0; ; i++ {
				b, err := r.ReadBroker()
				if err == io.EOF {
					return nil
				} else if err != nil {
					return err
				}
				fmt.Fprintf(out, "Tree %d:\n", i)
				if broker {
					fmt.Fprint(out, b.Dump())
					continue
				}
				t, err := newick.ToTree(b, newick.DefaultConverter())
				if err != nil {
					return err
				}
				fmt.Fprint(out, t.Dump(label))
			}
		},
	}

	cmd.Flags().BoolVar(&broker, "broker", false, "show the broker elements")

	return cmd
}
