// pkg/msvcreg/msvcreg.go

// Package msvcreg reads legacy (pre-2017) Visual Studio and Windows SDK
// install locations from the registry. Modern installations are enumerated
// with vswhere instead; this is the fallback for toolchains vswhere does not
// know about.
package msvcreg

import "errors"

// ErrPlatformNotSupported indicates the host operating system has no
// Windows registry
var ErrPlatformNotSupported = errors.New("registry lookup requires Windows")

// ErrNotFound indicates the requested key exists in neither the native nor
// the Wow6432Node registry view
var ErrNotFound = errors.New("registry value not found")

// SDK describes an installed Windows 10+ SDK kit
type SDK struct {
	Root     string   // Kit root directory (KitsRoot10)
	Versions []string // Installed versions, from the Include subdirectories
}
