// errors.go
package vcenv

import (
	"errors"
	"fmt"
)

var (
	// ErrVisualStudioNotFound indicates no Visual Studio installation was located
	ErrVisualStudioNotFound = errors.New("visual studio not found")

	// ErrVarNotFound indicates the variable is not part of the vcvars environment
	ErrVarNotFound = errors.New("variable not found")

	// ErrUnsupportedArch indicates the host/target architecture pair has no vcvars argument
	ErrUnsupportedArch = errors.New("unsupported architecture")

	// ErrScriptFailed indicates vcvarsall.bat reported an error
	ErrScriptFailed = errors.New("vcvars script failed")

	// ErrPlatformNotSupported indicates the host operating system is not Windows
	ErrPlatformNotSupported = errors.New("platform not supported")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or variable name if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
