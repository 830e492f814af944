// internal/cli/run.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv"
)

var runCmd = &cobra.Command{
	Use:   "run [command] [args...]",
	Short: "Run a command inside the vcvars environment",
	Long: `Run a command with the vcvars environment merged over the current
process environment.

Examples:
  vcenv run -- cl /c main.cc
  vcenv run --arch arm64 -- nmake`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := newVcvars().EnvironCached(ctx)
	if err != nil {
		return fmt.Errorf("resolving environment: %w", err)
	}

	child := exec.CommandContext(ctx, args[0], args[1:]...)
	child.Env = mergeEnviron(os.Environ(), env)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Forward the child's exit code rather than wrapping it in a
			// cobra usage error
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", args[0], err)
	}

	return nil
}

// mergeEnviron overlays the vcvars variables on the base environment.
// Keys are uppercased first: Windows treats Path and PATH as one variable,
// and a child environment carrying both is undefined.
func mergeEnviron(base []string, overlay vcenv.EnvMap) []string {
	merged := make(map[string]string, len(base)+len(overlay))
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		merged[strings.ToUpper(key)] = value
	}
	for k, v := range overlay {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(merged))
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env
}
