// pkg/vswhere/constants.go
package vswhere

const (
	// ProgramFilesX86Var is the env var dependency used to resolve the
	// installer directory. Microsoft documents the vswhere location under it
	// as "a fixed location that will be maintained"
	// (https://github.com/Microsoft/vswhere/wiki/Installing).
	ProgramFilesX86Var = "PROGRAMFILES(X86)"
)

// DefaultSelectArgs selects the newest installation. Callers can substitute
// these, e.g. with ["-version", "[15.0,16.0)"]; run `vswhere -help` for the
// full argument set.
var DefaultSelectArgs = []string{"-latest"}
