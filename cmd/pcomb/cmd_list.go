package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/pcomb/registry"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the named parsers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.table.Each(func(name string, e *registry.Entry) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, e.Doc)
			})
			return nil
		},
	}
}
