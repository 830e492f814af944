// vcenv.go

// Package vcenv locates a Visual Studio installation, runs its vcvars
// environment-setup script in a cmd.exe child process (at most once per
// Vcvars value) and exposes the resulting environment variables to the
// calling build process.
//
// Use SplitPathList to split a variable like INCLUDE into its directories.
//
// Example:
//
//	vc := vcenv.New()
//	include, err := vc.GetCached(ctx, "INCLUDE")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, dir := range vcenv.SplitPathList(include) {
//		args = append(args, "/I"+dir)
//	}
package vcenv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/vcenv/pkg/core"
	"github.com/arc-language/vcenv/pkg/envcache"
	"github.com/arc-language/vcenv/pkg/msvcreg"
	"github.com/arc-language/vcenv/pkg/toolchain"
	"github.com/arc-language/vcenv/pkg/vcvars"
	"github.com/arc-language/vcenv/pkg/vswhere"
)

// Re-export domain types for convenience
type (
	EnvMap       = vcvars.EnvMap
	Architecture = vcvars.Architecture
	Installation = vswhere.Installation
	Toolchain    = toolchain.Toolchain
	SDK          = msvcreg.SDK
	Config       = core.Config
)

// Re-export architecture constants
const (
	ArchX86   = vcvars.ArchX86
	ArchX64   = vcvars.ArchX64
	ArchArm   = vcvars.ArchArm
	ArchArm64 = vcvars.ArchArm64
)

// SplitPathList splits a Windows-format path list variable such as INCLUDE
func SplitPathList(value string) []string {
	return vcvars.SplitPathList(value)
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// legacyToolsets are the VC7 registry versions probed, newest first, when
// vswhere finds nothing. vswhere shipped with VS 2017 and knows nothing
// about earlier installs.
var legacyToolsets = []string{"14.0", "12.0", "11.0", "10.0"}

// Vcvars is the main entry point. The zero-cost constructor defers all work:
// Visual Studio discovery and the script run happen on first lookup.
type Vcvars struct {
	config  *Config
	logger  *log.Logger
	cache   *envcache.Cache
	target  Architecture
	session *vcvars.Session
}

// New creates a Vcvars with the default configuration
func New() *Vcvars {
	return NewWithConfig(nil)
}

// NewWithConfig creates a Vcvars with the given configuration
func NewWithConfig(cfg *Config) *Vcvars {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "vcenv: ", 0)
	}

	return &Vcvars{
		config: cfg,
		logger: logger,
		cache:  envcache.New(cfg.CachePath),
		target: Architecture(cfg.DefaultArch),
	}
}

// WithVswhereArgs substitutes vswhere's regular -latest argument, e.g. with
// ("-version", "[15.0,16.0)"). Run `vswhere -help` for more information.
func (v *Vcvars) WithVswhereArgs(args ...string) *Vcvars {
	v.config.VswhereArgs = args
	return v
}

// WithTarget sets the target architecture. The default is the host
// architecture.
func (v *Vcvars) WithTarget(arch Architecture) *Vcvars {
	v.target = arch
	return v
}

// Get runs vcvars on first use, memoizes its variables and returns
// var name's value. Lookup is case-insensitive.
//
// For use in build scripts that run repeatedly, GetCached skips the script
// run entirely on follow-up invocations and is significantly faster.
func (v *Vcvars) Get(ctx context.Context, name string) (string, error) {
	s, err := v.ensureSession(ctx)
	if err != nil {
		return "", err
	}

	value, err := s.Get(ctx, name)
	if err != nil {
		return "", wrapSessionErr("get", name, err)
	}

	return value, nil
}

// GetCached obtains var name's value from the persistent cache, running
// vcvars and filling the cache only on a miss
func (v *Vcvars) GetCached(ctx context.Context, name string) (string, error) {
	arch, err := v.resolveTarget()
	if err != nil {
		return "", err
	}

	value, ok, err := v.cache.GetVar(arch.String(), name)
	if err != nil {
		return "", &Error{Op: "cache read", Path: name, Err: err}
	}
	if ok {
		return value, nil
	}

	value, err = v.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if err := v.cache.PutVar(arch.String(), name, value); err != nil {
		return "", &Error{Op: "cache write", Path: name, Err: err}
	}

	return value, nil
}

// Environ returns the full vcvars environment, running the script on first
// use
func (v *Vcvars) Environ(ctx context.Context) (EnvMap, error) {
	s, err := v.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	env, err := s.Environ(ctx)
	if err != nil {
		return nil, wrapSessionErr("environ", "", err)
	}

	return env, nil
}

// EnvironCached returns the full vcvars environment from the persistent
// snapshot, running vcvars and filling it only on a miss
func (v *Vcvars) EnvironCached(ctx context.Context) (EnvMap, error) {
	arch, err := v.resolveTarget()
	if err != nil {
		return nil, err
	}

	snap, err := v.cache.GetSnapshot(arch.String())
	if err != nil {
		return nil, &Error{Op: "cache read", Err: err}
	}
	if snap != nil {
		return snap, nil
	}

	env, err := v.Environ(ctx)
	if err != nil {
		return nil, err
	}

	if err := v.cache.PutSnapshot(arch.String(), env); err != nil {
		return nil, &Error{Op: "cache write", Err: err}
	}

	return env, nil
}

// Changed returns only the variables vcvars added or modified relative to
// the calling process environment
func (v *Vcvars) Changed(ctx context.Context) (EnvMap, error) {
	s, err := v.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	env, err := s.Changed(ctx)
	if err != nil {
		return nil, wrapSessionErr("changed", "", err)
	}

	return env, nil
}

// wrapSessionErr maps session-level failures onto the package sentinels
func wrapSessionErr(op, path string, err error) error {
	switch {
	case errors.Is(err, vcvars.ErrVarNotFound):
		return &Error{Op: op, Path: path, Err: ErrVarNotFound}
	case errors.Is(err, vcvars.ErrScriptFailed):
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrScriptFailed, err)}
	}
	return &Error{Op: op, Path: path, Err: err}
}

// Toolchain derives compiler and linker paths plus include/lib directories
// from the vcvars environment
func (v *Vcvars) Toolchain(ctx context.Context) (*Toolchain, error) {
	env, err := v.Environ(ctx)
	if err != nil {
		return nil, err
	}
	return toolchain.FromEnviron(env), nil
}

// Installations enumerates all Visual Studio installations vswhere reports
func (v *Vcvars) Installations(ctx context.Context) ([]Installation, error) {
	if err := vswhere.DetectPlatform(); err != nil {
		return nil, &Error{Op: "list installations", Err: ErrPlatformNotSupported}
	}

	installs, err := v.locator().List(ctx)
	if err != nil {
		return nil, &Error{Op: "list installations", Err: err}
	}
	return installs, nil
}

// WindowsSDK returns the installed Windows SDK root and versions from the
// registry. Unlike the vcvars environment this does not need a script run,
// so it is available even when no Visual Studio is installed.
func (v *Vcvars) WindowsSDK() (*SDK, error) {
	sdk, err := msvcreg.WindowsSDK()
	if err != nil {
		if errors.Is(err, msvcreg.ErrPlatformNotSupported) {
			return nil, &Error{Op: "windows sdk", Err: ErrPlatformNotSupported}
		}
		return nil, &Error{Op: "windows sdk", Err: err}
	}
	return sdk, nil
}

// ClearCache removes the persistent cache directory
func (v *Vcvars) ClearCache() error {
	return v.cache.Clean()
}

// CacheDir returns the persistent cache directory
func (v *Vcvars) CacheDir() string {
	return v.cache.Dir()
}

func (v *Vcvars) locator() *vswhere.Locator {
	return vswhere.NewLocator(&vswhere.Config{
		Path:       v.config.VswherePath,
		SelectArgs: v.config.VswhereArgs,
		Prerelease: v.config.Prerelease,
		Debug:      v.config.Debug,
		Logger:     v.logger,
	})
}

func (v *Vcvars) resolveTarget() (Architecture, error) {
	if v.target != "" {
		if !v.target.IsValid() {
			return "", &Error{Op: "resolve target", Path: v.target.String(), Err: ErrUnsupportedArch}
		}
		return v.target, nil
	}

	// Auto-detection reads the host architecture, which only makes sense
	// where vcvars can run at all.
	if err := vcvars.DetectPlatform(); err != nil {
		return "", &Error{Op: "resolve target", Err: ErrPlatformNotSupported}
	}

	host, err := vcvars.DetectArchitecture()
	if err != nil {
		return "", &Error{Op: "resolve target", Err: err}
	}
	return host, nil
}

// ensureSession locates Visual Studio and constructs the script session once
func (v *Vcvars) ensureSession(ctx context.Context) (*vcvars.Session, error) {
	if v.session != nil {
		return v.session, nil
	}

	if err := vcvars.DetectPlatform(); err != nil {
		return nil, &Error{Op: "vcvars", Err: ErrPlatformNotSupported}
	}

	target, err := v.resolveTarget()
	if err != nil {
		return nil, err
	}

	installDir, err := v.locate(ctx)
	if err != nil {
		return nil, err
	}

	s, err := vcvars.NewSession(&vcvars.Config{
		InstallDir: installDir,
		Target:     target,
		Debug:      v.config.Debug,
		Logger:     v.logger,
	})
	if err != nil {
		return nil, &Error{Op: "vcvars", Err: err}
	}

	v.session = s
	return s, nil
}

// locate finds a Visual Studio installation: vswhere first, then the legacy
// registry toolsets
func (v *Vcvars) locate(ctx context.Context) (string, error) {
	path, err := v.locator().InstallationPath(ctx)
	if err == nil {
		return path, nil
	}

	v.logger.Printf("vswhere lookup failed (%v), trying registry", err)

	for _, version := range legacyToolsets {
		dir, regErr := msvcreg.VCInstallDir(version)
		if regErr == nil {
			v.logger.Printf("Found legacy toolset %s at %s", version, dir)
			return dir, nil
		}
	}

	return "", &Error{Op: "locate", Err: fmt.Errorf("%w: %v", ErrVisualStudioNotFound, err)}
}
