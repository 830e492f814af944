// pkg/vcvars/session.go
package vcvars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// ErrScriptFailed indicates vcvarsall.bat reported an error. The script
// exits 0 even then, so the stdout banner is the only failure signal.
var ErrScriptFailed = errors.New("vcvarsall.bat failed")

// ErrVarNotFound indicates a variable is not part of the vcvars environment
var ErrVarNotFound = errors.New("variable not found in vcvars environment")

// Session runs vcvarsall.bat in a cmd.exe child process (at most once) and
// exposes the environment the child inherited, mutated by vcvars
type Session struct {
	config *Config
	logger *log.Logger
	runner Runner

	env  EnvMap            // nil until the script has run
	base map[string]string // parent process environment, snapshotted at load
}

// NewSession creates a session for the given Visual Studio installation
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil || cfg.InstallDir == "" {
		return nil, fmt.Errorf("installation directory is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	runner := cfg.Runner
	if runner == nil {
		runner = execRunner{}
	}

	return &Session{
		config: cfg,
		logger: logger,
		runner: runner,
	}, nil
}

// Get returns the value of var name from the vcvars environment. Lookup is
// case-insensitive. Runs the script on first use.
func (s *Session) Get(ctx context.Context, name string) (string, error) {
	if err := s.load(ctx); err != nil {
		return "", err
	}

	value, ok := s.env[strings.ToUpper(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrVarNotFound, name)
	}

	return value, nil
}

// Environ returns the full vcvars environment. Runs the script on first use.
// The returned map is a copy; mutating it does not affect the session.
func (s *Session) Environ(ctx context.Context) (EnvMap, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	env := make(EnvMap, len(s.env))
	for k, v := range s.env {
		env[k] = v
	}

	return env, nil
}

// Changed returns only the variables vcvars added or modified relative to
// the environment of the calling process at the time the script ran
func (s *Session) Changed(ctx context.Context) (EnvMap, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	changed := make(EnvMap)
	for k, v := range s.env {
		if base, ok := s.base[k]; !ok || base != v {
			changed[k] = v
		}
	}

	return changed, nil
}

// load runs the script once and memoizes the parsed environment
func (s *Session) load(ctx context.Context) error {
	if s.env != nil {
		return nil
	}

	if err := DetectPlatform(); err != nil {
		return err
	}

	host := s.config.Host
	if host == "" {
		detected, err := DetectArchitecture()
		if err != nil {
			return err
		}
		host = detected
	}

	target := s.config.Target
	if target == "" {
		target = host
	}
	if !target.IsValid() {
		return fmt.Errorf("invalid target architecture: %s", target)
	}

	archArg, err := target.ScriptArg(host)
	if err != nil {
		return err
	}

	script, err := ScriptPath(s.config.InstallDir)
	if err != nil {
		return err
	}

	name, args, err := BuildCommand(script, archArg)
	if err != nil {
		return err
	}

	s.logger.Printf("Running vcvars: %s (%s)", script, archArg)

	out, err := s.runner.Run(ctx, name, args...)
	if err != nil {
		return err
	}

	stdout := string(out)
	if strings.HasPrefix(stdout, ErrorPrefix) {
		return fmt.Errorf("%w: %s", ErrScriptFailed, strings.ReplaceAll(stdout, "\r\n", `\n`))
	}

	env := ParseEnvironment(stdout, SeparatorLine)
	if len(env) == 0 {
		return fmt.Errorf("%w: no environment block in output", ErrScriptFailed)
	}

	s.logger.Printf("vcvars environment loaded: %d variables", len(env))

	s.base = snapshotEnviron()
	s.env = env

	return nil
}

// snapshotEnviron captures the current process environment with uppercased
// keys so it can be compared against the vcvars map
func snapshotEnviron() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[strings.ToUpper(key)] = value
	}
	return env
}
