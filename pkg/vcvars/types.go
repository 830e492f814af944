// pkg/vcvars/types.go
package vcvars

import (
	"context"
	"log"
)

// EnvMap holds environment variables keyed by uppercased name
type EnvMap map[string]string

// Config configures a vcvars session
type Config struct {
	InstallDir string       // Required: Visual Studio installation root
	Target     Architecture // Target architecture (default: host)
	Host       Architecture // Host architecture (default: detected)
	Debug      bool
	Logger     *log.Logger

	// Runner executes the cmd.exe child process. Overridable so callers can
	// substitute a non-interactive transport.
	Runner Runner
}

// Runner executes a command and returns its combined stdout
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
