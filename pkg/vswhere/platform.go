// pkg/vswhere/platform.go
package vswhere

import (
	"fmt"
	"runtime"
)

// DetectPlatform checks if we're on Windows
func DetectPlatform() error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("vswhere only supports Windows, got: %s", runtime.GOOS)
	}
	return nil
}
