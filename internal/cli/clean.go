// internal/cli/clean.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the cached vcvars environment",
	Long: `Remove the cache directory. The next lookup runs the vcvars script
again, so use this after installing or updating Visual Studio.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	vc := newVcvars()
	dir := vc.CacheDir()

	if err := vc.ClearCache(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	fmt.Printf("%s Removed %s\n", color.GreenString("✓"), dir)
	return nil
}
