//go:build !windows

// pkg/msvcreg/lookup_other.go
package msvcreg

// VCInstallDir returns the VC install directory for a legacy toolset
// version such as "14.0"
func VCInstallDir(version string) (string, error) {
	return "", ErrPlatformNotSupported
}

// WindowsSDK returns the Windows 10+ SDK root and its installed versions
func WindowsSDK() (*SDK, error) {
	return nil, ErrPlatformNotSupported
}
