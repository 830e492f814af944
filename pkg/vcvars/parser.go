// pkg/vcvars/parser.go
package vcvars

import (
	"bufio"
	"strings"
)

// ParseEnvironment extracts the KEY=VALUE block that `set` printed after the
// separator line. Keys are uppercased; Windows env var names are
// case-insensitive and vcvars itself is inconsistent about casing.
//
// The separator is matched by prefix: cmd.exe's `echo.X && ...` form appends
// a trailing space to X, so exact equality would never match.
func ParseEnvironment(output, separator string) EnvMap {
	env := make(EnvMap)
	collect := false

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // PATH lines can be long

	for scanner.Scan() {
		line := scanner.Text()

		if !collect {
			if strings.HasPrefix(line, separator) {
				collect = true
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		env[strings.ToUpper(key)] = value
	}

	return env
}

// SplitPathList splits a vcvars path list variable such as INCLUDE or LIB.
// The values are Windows-format regardless of the host OS, so the separator
// is always ";" rather than the platform list separator.
func SplitPathList(value string) []string {
	var paths []string
	for _, p := range strings.Split(value, ";") {
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
