package cmd

import (
	"github.com/spf13/cobra"
)

// MakeCmd groups the commands that generate project files or values.
var MakeCmd = &cobra.Command{
	Use:     "make",
	Aliases: []string{"generate"},
	Short:   "Make or generate something",
	Long:    `Generates the values and files a project created from the SaaS template needs.`,
}

func init() {
	MakeCmd.AddCommand(makeKeysCmd)
	MakeCmd.AddCommand(makeSignaturesCmd)
}
