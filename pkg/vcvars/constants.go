// pkg/vcvars/constants.go
package vcvars

const (
	// ScriptRelPath is where vcvarsall.bat lives inside a VS 2017+ installation
	ScriptRelPath = "VC\\Auxiliary\\Build\\vcvarsall.bat"

	// SeparatorLine is echoed between the vcvars run and the `set` listing so
	// the parser can tell the script's own chatter from the variable block
	SeparatorLine = "====================_vcenv_environment_separator"

	// ErrorPrefix starts the first stdout line when vcvarsall.bat fails.
	// The script still exits 0 in that case, so stdout is the only signal.
	ErrorPrefix = "[ERROR:"
)
