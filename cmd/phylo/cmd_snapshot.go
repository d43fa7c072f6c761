package main

import (
	"fmt"
	"os"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/snapshot"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Convert trees to and from binary snapshots",
	}
	cmd.AddCommand(newSnapshotEncodeCmd())
	cmd.AddCommand(newSnapshotDecodeCmd())
	return cmd
}

func newSnapshotEncodeCmd() *cobra.Command {
	var (
		output      string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Write the first tree of a Newick file as a snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			t, err := readTree(cmd, name)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("compression") {
				compression = conf.Snapshot.Compression
			}
			compress, err := snapshot.ParseCompression(compression)
			if err != nil {
				return err
			}
			data, err := snapshot.Encode(t, compress)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s to %s\n",
				humanize.Bytes(uint64(len(data))), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&compression, "compression", "c", "zstd", "none or zstd")

	return cmd
}

func newSnapshotDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Print a snapshot as a Newick tree",
		Args:  cobra.MaximumNArgs(1),
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

			t, err := snapshot.Read[tree.DefaultNodeData, tree.DefaultEdgeData](in)
			if err != nil {
				return err
			}
			w := newick.NewWriter(cmd.OutOrStdout())
			w.Options = conf.Newick.Options()
			return w.WriteAll([]*tree.DefaultTree{t})
		},
	}

	return cmd
}
