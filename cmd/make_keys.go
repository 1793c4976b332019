package cmd

import (
	"io"
	"strings"

	"github.com/PolarWolf314/saas-template-companion/internal/configs"
	"github.com/PolarWolf314/saas-template-companion/internal/envfile"
	"github.com/PolarWolf314/saas-template-companion/internal/presenter"
	"github.com/PolarWolf314/saas-template-companion/internal/ui"
	"github.com/PolarWolf314/saas-template-companion/internal/utils"
	"github.com/PolarWolf314/saas-template-companion/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	keysEnvFile string
	keysOutput  string
)

func init() {
	makeKeysCmd.Flags().StringVar(&keysEnvFile, "env", "", "path to the .env file to update (default \".env\")")
	makeKeysCmd.Flags().StringVarP(&keysOutput, "output", "o", "", "output format for the generated secrets: table or json (default \"table\")")
}

// resetMakeKeysCommandState resets the make keys command's global state for testing.
func resetMakeKeysCommandState() {
	keysEnvFile = ""
	keysOutput = ""
}

var makeKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generates the application secrets and stores them in the .env file",
	Long: `Generates a fresh X25519 key pair and a symmetric key, prints them and
stores them in the .env file.

Existing definitions of NEXTAUTH_SECRET, ASYMMETRIC_ENCRYPTION_PUBLIC_KEY and
ASYMMETRIC_ENCRYPTION_PRIVATE_KEY are replaced in place, missing ones are
appended. Every other line of the file is kept as is.

Use --dry-run to print the secrets without touching the file.
Use --output json to get machine-readable output on stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting make keys command")

		envFile := Config.Keys.EnvFile
		if cmd.Flags().Changed("env") {
			envFile = keysEnvFile
		}
		output := keysOutputFormat(cmd, Config)
		Logger.Debugf("Target file: %s, output format: %s", envFile, output)

		// Keep stdout clean for programs reading the JSON document.
		out := cmd.OutOrStdout()
		status := out
		if output == presenter.FormatJSON {
			status = cmd.ErrOrStderr()
		}

		spinner, cleanup := startSpinner("Generating keys...", status)
		defer cleanup()

		result, err := workflows.MakeKeys(cmd.Context(), workflows.MakeKeysOptions{
			EnvFile:   envFile,
			DryRun:    dryRun,
			AuditPath: Config.Audit.Path,
			Present: func(set *envfile.Set) error {
				Logger.Debugf("Generated %d secrets", set.Len())
				return pauseSpinner(spinner, "Updating "+envFile+"...", func() error {
					return presenter.Render(out, set, output)
				})
			},
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to make keys: %w", err)
		}

		spinner.FinalMSG = makeKeysFinalMessage(result)
		Logger.Infof("Make keys command completed successfully")
		return nil
	},
}

// keysOutputFormat returns the --output flag when set, else the configured format.
func keysOutputFormat(cmd *cobra.Command, config *configs.Config) string {
	if cmd.Flags().Changed("output") {
		return keysOutput
	}
	return config.Keys.Output
}

func makeKeysFinalMessage(result *workflows.MakeKeysResult) string {
	if result.DryRun {
		return ui.InfoMark() + " Dry run, skipping file update of " + ui.Path.Sprint(result.EnvFile)
	}

	var b strings.Builder
	b.WriteString(ui.SuccessMark() + " Secrets stored in " + ui.Path.Sprint(result.EnvFile) + "\n")
	writeNames(&b, "updated", result.Sync.Patched)
	writeNames(&b, "added", result.Sync.Appended)
	if len(result.Sync.Duplicates) > 0 {
		b.WriteString(ui.WarningMark() + " Duplicate definitions left untouched on line(s) " +
			utils.FormatLineNumbers(result.Sync.Duplicates) + "\n")
	}
	return b.String()
}

func writeNames(w io.StringWriter, label string, names []string) {
	for _, name := range names {
		_, _ = w.WriteString("    " + label + ": " + ui.EnvName.Sprint(name) + "\n")
	}
}
