// pkg/vcvars/platform.go
package vcvars

import (
	"fmt"
	"runtime"
)

// Architecture represents an MSVC target architecture
type Architecture string

const (
	// Common architectures
	ArchX86   Architecture = "x86"   // x86 32-bit
	ArchX64   Architecture = "x64"   // x86_64
	ArchArm   Architecture = "arm"   // ARM 32-bit
	ArchArm64 Architecture = "arm64" // ARM 64-bit
)

// AllArchitectures contains all supported MSVC target architectures
var AllArchitectures = []Architecture{
	ArchX86,
	ArchX64,
	ArchArm,
	ArchArm64,
}

// DetectArchitecture automatically detects the current host architecture
func DetectArchitecture() (Architecture, error) {
	goos := runtime.GOOS
	goarch := runtime.GOARCH

	if goos != "windows" {
		return "", fmt.Errorf("vcvars only supports Windows, got: %s", goos)
	}

	switch goarch {
	case "386":
		return ArchX86, nil
	case "amd64":
		return ArchX64, nil
	case "arm":
		return ArchArm, nil
	case "arm64":
		return ArchArm64, nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

// String returns the string representation of the architecture
func (a Architecture) String() string {
	return string(a)
}

// IsValid checks if the architecture is valid
func (a Architecture) IsValid() bool {
	for _, valid := range AllArchitectures {
		if a == valid {
			return true
		}
	}
	return false
}

// ScriptArg returns the vcvarsall.bat argument that selects a toolchain
// hosted on `host` and targeting `a`. Usage table:
// https://learn.microsoft.com/en-us/cpp/build/building-on-the-command-line#vcvarsall-syntax
func (a Architecture) ScriptArg(host Architecture) (string, error) {
	switch host {
	case ArchX86:
		switch a {
		case ArchX86:
			return "x86", nil
		case ArchX64:
			return "x86_x64", nil
		case ArchArm:
			return "x86_arm", nil
		case ArchArm64:
			return "x86_arm64", nil
		}
	case ArchX64:
		switch a {
		case ArchX86:
			return "x64_x86", nil
		case ArchX64:
			return "x64", nil
		case ArchArm:
			return "x64_arm", nil
		case ArchArm64:
			return "x64_arm64", nil
		}
	}
	return "", fmt.Errorf("no vcvars toolchain for host %s targeting %s", host, a)
}

// DetectPlatform checks if we're on Windows
func DetectPlatform() error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("vcvars only supports Windows, got: %s", runtime.GOOS)
	}
	return nil
}
