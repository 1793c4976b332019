package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/saas-template-companion/internal/configs"
	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
	logger "github.com/PolarWolf314/saas-template-companion/internal/logging"
	"github.com/PolarWolf314/saas-template-companion/internal/presenter"
	"github.com/PolarWolf314/saas-template-companion/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	dryRun     bool
	configPath string
	Logger     logger.Logger
	Config     = configs.Default()

	rootCmd = &cobra.Command{
		Use:   "saas-template-companion",
		Short: "Companion CLI for the SaaS template, eases common setup operations.",
		Long: `saas-template-companion helps you set up and run the common operations of a
SaaS project created from the template.

Features:
  - Generate the secrets the application expects in its .env file
  - Clean up build artifacts and other files using glob patterns

Run 'saas-template-companion help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}

			config, err := configs.Load(configPath)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load configuration: %w", err)
			}
			// Stdout carries only the JSON document in json mode.
			if cmd == makeKeysCmd && keysOutputFormat(cmd, config) == presenter.FormatJSON {
				Logger.Out = cmd.ErrOrStderr()
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t, dry-run=%t", cmd.CommandPath(), verbose, debug, dryRun)
			if config.Path != "" {
				Logger.Infof("Loaded configuration from %s", config.Path)
			}
			for _, key := range config.Unknown {
				Logger.WarnfUser("Unknown configuration key %s in %s", key, config.Path)
			}
			Config = config
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "preview the modifications without applying them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file to load (default ./"+configs.DefaultConfigFile+")")

	rootCmd.AddCommand(MakeCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(authorsCmd)
}

// Execute runs the root command and prints any error to stderr.
// Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, ui.ErrorMark()+" "+err.Error())
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(os.Stderr, ui.InfoMark()+" "+hint)
	}
}

// errorHint suggests a fix for the failures a user can act on.
func errorHint(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrConfigNotFound):
		return "Pass an existing file to " + ui.Flag.Sprint("--config") + " or unset " + ui.Code.Sprint(configs.ConfigEnvVar)
	case errors.Is(err, kerrors.ErrUnknownFormat):
		return "Use " + ui.Flag.Sprint("--output table") + " or " + ui.Flag.Sprint("--output json")
	case errors.Is(err, kerrors.ErrAccess):
		return "Check that the target file's directory exists and that you can write to it"
	case errors.Is(err, kerrors.ErrRead), errors.Is(err, kerrors.ErrWrite):
		return "The target file may be partially written, review it before running again"
	case errors.Is(err, kerrors.ErrGeneration):
		return "The system random source is unavailable"
	}
	return ""
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables and flags to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	dryRun = false
	configPath = ""
	Logger = logger.Logger{}
	Config = configs.Default()
	resetMakeKeysCommandState()
	resetSignaturesCommandState()
	resetCleanupCommandState()
	resetChangedFlags(rootCmd)
}

func resetChangedFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetChangedFlags(child)
	}
}
