// internal/cli/list.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Visual Studio installations",
	Long:  `List all Visual Studio installations reported by vswhere.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	vc := newVcvars()

	installs, err := vc.Installations(ctx)
	if err != nil {
		return fmt.Errorf("listing installations: %w", err)
	}

	if len(installs) == 0 {
		fmt.Println("No Visual Studio installations found.")
		return nil
	}

	prerelease := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("Visual Studio installations:\n\n")
	for _, inst := range installs {
		marker := " "
		if inst.IsPrerelease {
			marker = prerelease("P")
		}
		fmt.Printf("  %s %s (%s)\n", marker, inst.DisplayName, inst.InstallationVersion)
		fmt.Printf("      %s\n", inst.InstallationPath)
	}

	fmt.Printf("\nP = prerelease\n")

	// Legacy toolchains build against a registry-installed SDK rather than
	// one bundled with VS, so it is worth surfacing separately.
	if sdk, err := vc.WindowsSDK(); err == nil {
		fmt.Printf("\nWindows SDK: %s\n", sdk.Root)
		fmt.Printf("  Versions: %s\n", strings.Join(sdk.Versions, ", "))
	}

	return nil
}
