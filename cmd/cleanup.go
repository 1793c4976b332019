package cmd

import (
	"fmt"

	"github.com/PolarWolf314/saas-template-companion/internal/ui"
	"github.com/PolarWolf314/saas-template-companion/internal/utils"
	"github.com/PolarWolf314/saas-template-companion/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	cleanupBlacklist []string
	cleanupForce     bool
)

func init() {
	cleanupCmd.Flags().StringArrayVarP(&cleanupBlacklist, "blacklist", "b", nil, "glob pattern of files or folders to remove (repeatable)")
	cleanupCmd.Flags().BoolVarP(&cleanupForce, "force", "f", false, "skip confirmation prompt")
}

func resetCleanupCommandState() {
	cleanupBlacklist = nil
	cleanupForce = false
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Cleanup (remove) files or folders using glob patterns",
	Long: `Removes every file or folder matching one of the glob patterns.

Patterns are relative to the working directory and support ** to match any
number of folders. They come from --blacklist or, when no flag is given, from
cleanup.blacklist in the configuration file.

Use --dry-run to preview what would be removed.
Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting cleanup command")
		out := cmd.OutOrStdout()

		patterns := cleanupBlacklist
		if len(patterns) == 0 {
			patterns = Config.Cleanup.Blacklist
			Logger.Debugf("Using %d pattern(s) from configuration", len(patterns))
		}
		if len(patterns) == 0 {
			fmt.Fprintln(out, ui.InfoMark()+" No patterns to clean. Pass "+ui.Flag.Sprint("--blacklist")+
				" or set "+ui.Code.Sprint("cleanup.blacklist")+" in the configuration file")
			return nil
		}
		Logger.Debugf("Cleanup patterns: %v", patterns)

		var confirm func([]string) bool
		if !cleanupForce {
			confirm = func(matches []string) bool {
				fmt.Fprintf(out, "Found %d path(s) to remove:%s\n", len(matches), utils.FormatPaths(matches))
				fmt.Fprintln(out, "These files cannot be recovered.")
				return utils.Confirm(cmd.InOrStdin(), out, "Do you want to continue?")
			}
		}

		result, err := workflows.Cleanup(cmd.Context(), workflows.CleanupOptions{
			Patterns:  patterns,
			DryRun:    dryRun,
			Confirm:   confirm,
			AuditPath: Config.Audit.Path,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to clean up: %w", err)
		}

		switch {
		case len(result.Matches) == 0:
			fmt.Fprintln(out, ui.SuccessMark()+" Nothing matched. Nothing to clean.")
		case result.DryRun:
			fmt.Fprintf(out, "[dry-run] Would remove %d path(s):%s", len(result.Matches), utils.FormatPaths(result.Matches))
			fmt.Fprintln(out, "\nNo changes made.")
		case result.Aborted:
			fmt.Fprintln(out, "Aborted.")
		default:
			fmt.Fprintf(out, "%s Removed %d path(s)\n", ui.SuccessMark(), len(result.Removed))
		}

		Logger.Infof("Cleanup command completed")
		return nil
	},
}
