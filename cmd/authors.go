package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Authors lists the maintainers printed by the authors command.
var Authors = []string{
	"PolarWolf314",
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Print authors and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Authors:")
		for _, author := range Authors {
			fmt.Fprintln(cmd.OutOrStdout(), "  - "+author)
		}
	},
}
