package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=x.y.z".
var Version = "dev"

const cryptoModule = "golang.org/x/crypto"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		banner := figure.NewColorFigure("STC", "standard", "green", true)
		banner.Print()
		fmt.Println()

		fmt.Printf("%s v%s - with\n", rootCmd.Name(), Version)
		fmt.Printf("\t- %s\n", runtime.Version())
		fmt.Printf("\t- %s %s\n", cryptoModule, moduleVersion(cryptoModule))
	},
}

// moduleVersion returns the version of a dependency compiled into the binary.
func moduleVersion(path string) string {
	info, ok := rdebug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}
