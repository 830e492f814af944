// pkg/vswhere/types.go
package vswhere

import (
	"context"
	"log"
)

// Config configures the vswhere locator
type Config struct {
	Path       string   // Path to vswhere.exe (default: the fixed installer location)
	SelectArgs []string // Arguments substituting -latest (default: -latest)
	Prerelease bool     // Include Visual Studio Preview installations
	Debug      bool
	Logger     *log.Logger

	// Runner executes vswhere.exe. Overridable so callers can substitute a
	// non-interactive transport.
	Runner Runner
}

// Runner executes a command and returns its stdout
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Installation describes one Visual Studio installation as reported by
// `vswhere -format json`
type Installation struct {
	InstanceID          string `json:"instanceId"`
	DisplayName         string `json:"displayName"`
	InstallationPath    string `json:"installationPath"`
	InstallationVersion string `json:"installationVersion"`
	ProductID           string `json:"productId"`
	IsPrerelease        bool   `json:"isPrerelease"`
	InstallDate         string `json:"installDate"`
}
