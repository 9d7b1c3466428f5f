package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "breachplan",
		Short: "Enumerate adversary paths and assemble missions against a facility graph",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())

	return root
}
