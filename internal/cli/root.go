// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv"
	"github.com/arc-language/vcenv/pkg/core"
)

var (
	cfgFile string
	arch    string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vcenv",
	Short: "Visual Studio build environment helper",
	Long: `vcenv - Visual Studio build environment helper

Locates a Visual Studio installation, runs its vcvars setup script and
exposes the resulting environment (INCLUDE, LIB, PATH, ...) to build
scripts, without every script paying the cost of a cmd.exe round trip.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vcenv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&arch, "arch", "", "target architecture (x86, x64, arm, arm64; default: host)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if arch != "" {
		config.DefaultArch = arch
	}
	if debug {
		config.Debug = true
	}
}

// newVcvars constructs the library entry point from the resolved config
func newVcvars() *vcenv.Vcvars {
	return vcenv.NewWithConfig(config)
}
