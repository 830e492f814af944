// internal/cli/get.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getNoCache bool

var getCmd = &cobra.Command{
	Use:   "get [variable]",
	Short: "Print one variable from the vcvars environment",
	Long: `Print the value of a single environment variable vcvars sets up.
Lookup is case-insensitive.

Examples:
  vcenv get INCLUDE
  vcenv get VCToolsVersion --arch x64`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getNoCache, "no-cache", false, "always run the vcvars script")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	vc := newVcvars()

	var value string
	var err error
	if getNoCache {
		value, err = vc.Get(ctx, args[0])
	} else {
		value, err = vc.GetCached(ctx, args[0])
	}
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}
