// internal/cli/env.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv"
)

var (
	envFormat  string
	envChanged bool
	envNoCache bool
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the vcvars environment",
	Long: `Print the environment variables vcvars sets up.

Examples:
  vcenv env
  vcenv env --arch x64 --format json
  vcenv env --changed --format sh`,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVar(&envFormat, "format", "env", "output format (env, json, cmd, sh)")
	envCmd.Flags().BoolVar(&envChanged, "changed", false, "only variables vcvars added or modified")
	envCmd.Flags().BoolVar(&envNoCache, "no-cache", false, "always run the vcvars script")
}

func runEnv(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	vc := newVcvars()

	var env vcenv.EnvMap
	var err error
	switch {
	case envChanged:
		// The changed subset depends on the calling process, so it never
		// comes from the cache.
		env, err = vc.Changed(ctx)
	case envNoCache:
		env, err = vc.Environ(ctx)
	default:
		env, err = vc.EnvironCached(ctx)
	}
	if err != nil {
		return fmt.Errorf("resolving environment: %w", err)
	}

	return printEnv(env, envFormat)
}

func printEnv(env vcenv.EnvMap, format string) error {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	switch format {
	case "env":
		for _, k := range keys {
			fmt.Printf("%s=%s\n", k, env[k])
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	case "cmd":
		// set syntax, not setx: the variables should live and die with the
		// calling shell
		for _, k := range keys {
			fmt.Printf("set %s=\"%s\"\n", k, env[k])
		}
	case "sh":
		for _, k := range keys {
			fmt.Printf("export %s=\"%s\"\n", k, env[k])
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
