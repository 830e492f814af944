// pkg/vswhere/locator.go
package vswhere

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled indicates vswhere.exe is missing from its fixed location
var ErrNotInstalled = errors.New("vswhere.exe not found")

// ErrNoInstallation indicates vswhere ran but matched no Visual Studio
// installation
var ErrNoInstallation = errors.New("no visual studio installation found")

// Locator finds Visual Studio installations via vswhere.exe
type Locator struct {
	config *Config
	logger *log.Logger
	runner Runner
}

// NewLocator creates a locator. The vswhere path is resolved lazily so a
// locator can be constructed on any platform.
func NewLocator(cfg *Config) *Locator {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	runner := cfg.Runner
	if runner == nil {
		runner = execRunner{}
	}

	return &Locator{
		config: cfg,
		logger: logger,
		runner: runner,
	}
}

// DefaultPath returns the fixed vswhere.exe location under
// %ProgramFiles(x86)%
func DefaultPath() (string, error) {
	programFiles := os.Getenv(ProgramFilesX86Var)
	if programFiles == "" {
		return "", fmt.Errorf("env var %s isn't set, which is a dependency to locate vswhere", ProgramFilesX86Var)
	}
	return filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", "vswhere.exe"), nil
}

// InstallationPath runs vswhere and returns the installation path of the
// selected Visual Studio
func (l *Locator) InstallationPath(ctx context.Context) (string, error) {
	args := append(l.selectArgs(), "-property", "installationPath", "-utf8")

	out, err := l.run(ctx, args)
	if err != nil {
		return "", err
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", ErrNoInstallation
	}

	return path, nil
}

// List runs vswhere with -format json and returns all matching installations
func (l *Locator) List(ctx context.Context) ([]Installation, error) {
	args := append(l.selectArgs(), "-format", "json", "-utf8")

	out, err := l.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var installs []Installation
	if err := json.Unmarshal(out, &installs); err != nil {
		return nil, fmt.Errorf("parsing vswhere output: %w", err)
	}

	return installs, nil
}

// selectArgs builds the installation-selecting argument list. -prerelease
// must precede the selectors for vswhere to honor it.
func (l *Locator) selectArgs() []string {
	var args []string
	if l.config.Prerelease {
		args = append(args, "-prerelease")
	}

	sel := l.config.SelectArgs
	if len(sel) == 0 {
		sel = DefaultSelectArgs
	}

	return append(args, sel...)
}

func (l *Locator) run(ctx context.Context, args []string) ([]byte, error) {
	if err := DetectPlatform(); err != nil {
		return nil, err
	}

	path := l.config.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrNotInstalled, path, err)
	}

	if l.config.Debug {
		l.logger.Printf("Running vswhere: %s %s", path, strings.Join(args, " "))
	}

	return l.runner.Run(ctx, path, args...)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}
