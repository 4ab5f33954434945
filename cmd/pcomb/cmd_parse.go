package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

func newParseCmd(a *app) *cobra.Command {
	var parserName string
	var tree bool

	cmd := &cobra.Command{
		Use:   "parse [input…]",
		Short: "Parse the arguments, or standard input, with a named parser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parser") {
				parserName = a.cfg.Parser
			}
			if !cmd.Flags().Changed("tree") {
				tree = a.cfg.Tree
			}
			p, err := a.table.Lookup(parserName)
			if err != nil {
				return err
			}
			var input io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				input = strings.NewReader(strings.Join(args, " "))
			}
			s := stream.New(input)
			r := comb.Run(p, s)
			if err := s.Err(); err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			printResult(cmd.OutOrStdout(), parserName, r, tree)
			if r.IsFailure() {
				return errNoMatch
			}
			if rest := s.Rest(); rest != "" {
				tracer().Infof("unconsumed input: %q", rest)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&parserName, "parser", "p", "hexint", "name of the parser to use")
	cmd.Flags().BoolVar(&tree, "tree", false, "render sequences as a tree")
	return cmd
}

// printResult writes the outcome of a parse run in the form
//
//    success? true
//    [0, x, 1A]
//
// If tree is set, sequences are additionally rendered as a tree on the terminal.
func printResult(w io.Writer, name string, r result.Result, tree bool) {
	fmt.Fprintf(w, "success? %v\n", r.IsSuccess())
	if r.IsFailure() {
		return
	}
	fmt.Fprintln(w, r.String())
	if tree && r.IsSequence() {
		renderTree(name, r)
	}
}
