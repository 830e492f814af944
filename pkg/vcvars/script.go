// pkg/vcvars/script.go
package vcvars

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ScriptPath returns the path to vcvarsall.bat inside a Visual Studio
// installation, verifying the file exists. VS 2017+ places the script under
// VC\Auxiliary\Build; pre-2017 installs keep it at VC\vcvarsall.bat, and a
// registry-sourced VC7 directory may already point inside VC itself.
func ScriptPath(installDir string) (string, error) {
	if installDir == "" {
		return "", fmt.Errorf("installation directory is required")
	}

	candidates := []string{
		filepath.Join(installDir, "VC", "Auxiliary", "Build", "vcvarsall.bat"),
		filepath.Join(installDir, "VC", "vcvarsall.bat"),
		filepath.Join(installDir, "vcvarsall.bat"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("vcvarsall.bat not found under %s", installDir)
}

// BuildCommand assembles the cmd.exe invocation that runs vcvarsall.bat for
// archArg, echoes the separator and lists the resulting environment with
// `set`. cmd.exe is resolved from %WINDIR%\System32.
func BuildCommand(scriptPath, archArg string) (string, []string, error) {
	winDir := os.Getenv("WINDIR")
	if winDir == "" {
		return "", nil, fmt.Errorf("env var WINDIR isn't set, which is a dependency to run vcvars")
	}

	cmdExe := filepath.Join(winDir, "System32", "cmd.exe")

	args := []string{
		"/C",
		escapeCmd(scriptPath), archArg, "&&",
		"echo." + SeparatorLine, "&&",
		"set",
	}

	return cmdExe, args, nil
}

// escapeCmd escapes the characters cmd.exe treats specially in a path.
// `%` cannot be escaped this way: a path with two `%`s around the name of an
// existing env var breaks the command, and `%%` does not help.
func escapeCmd(s string) string {
	s = strings.ReplaceAll(s, "^", "^^")
	s = strings.ReplaceAll(s, "&", "^&")
	return s
}

// execRunner runs commands with os/exec, capturing stdout only. vcvars
// writes its error banner to stdout, so stderr carries nothing we need.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}
