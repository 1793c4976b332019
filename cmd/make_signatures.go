package cmd

import (
	"github.com/spf13/cobra"
)

var signaturesWatch bool

func init() {
	makeSignaturesCmd.Flags().BoolVarP(&signaturesWatch, "watch", "w", false, "watch procedure index files and update signatures as needed")
}

func resetSignaturesCommandState() {
	signaturesWatch = false
}

var makeSignaturesCmd = &cobra.Command{
	Use:   "signatures",
	Short: "Generates the signatures of the API procedures",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("Starting make signatures command with watch=%t", signaturesWatch)
		Logger.WarnfUser("Not implemented yet")
		return nil
	},
}
