package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/TuftsBCB/phylo/lexer"
	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that files hold well-formed Newick trees",
		Long: `Check that the brackets of each file are balanced, and that every tree in
it can be read and passes the structural checks of the tree store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				n, err := validateFile(cmd, name)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %s\n", displayName(name), err)
					continue
				}
				fmt.Fprintf(out, "%s: ok, %d trees\n", displayName(name), n)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs are invalid", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}

func validateFile(cmd *cobra.Command, name string) (int, error) {
	in, err := openInput(cmd, name)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return 0, err
	}

	tokens := lexer.Tokenize(string(data), lexer.WithBracketComments(), lexer.WithBraceTags())
	if last := tokens[len(tokens)-1]; last.Kind == lexer.EOF && !lexer.ValidateBrackets(tokens) {
		return 0, fmt.Errorf("unbalanced brackets")
	}

	trees, err := newick.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return 0, err
	}
	for i, t := range trees {
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return len(trees), nil
}
