//go:build windows

// pkg/msvcreg/lookup_windows.go
package msvcreg

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const (
	vc7Key      = `SOFTWARE\Microsoft\VisualStudio\SxS\VC7`
	vc7KeyWow   = `SOFTWARE\Wow6432Node\Microsoft\VisualStudio\SxS\VC7`
	kitsKey     = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`
	kitsKeyWow  = `SOFTWARE\Wow6432Node\Microsoft\Windows Kits\Installed Roots`
	kitsRootVal = "KitsRoot10"
)

// VCInstallDir returns the VC install directory for a legacy toolset
// version such as "14.0"
func VCInstallDir(version string) (string, error) {
	dir, err := readStringValue(vc7Key, version)
	if err != nil {
		dir, err = readStringValue(vc7KeyWow, version)
		if err != nil {
			return "", fmt.Errorf("%w: VC7 toolset %s", ErrNotFound, version)
		}
	}
	return dir, nil
}

// WindowsSDK returns the Windows 10+ SDK root and its installed versions
func WindowsSDK() (*SDK, error) {
	root, err := readStringValue(kitsKey, kitsRootVal)
	if err != nil {
		root, err = readStringValue(kitsKeyWow, kitsRootVal)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, kitsRootVal)
		}
	}

	// A version directory that exists but holds only a stub entry is an
	// artifact of partial SDK installs; require at least two subdirectories.
	globbed, err := filepath.Glob(filepath.Join(root, "Include", "*"))
	if err != nil || len(globbed) == 0 {
		return nil, fmt.Errorf("%w: no SDK versions under %s", ErrNotFound, root)
	}

	var versions []string
	for _, dir := range globbed {
		entries, _ := os.ReadDir(dir)
		if len(entries) >= 2 {
			versions = append(versions, filepath.Base(dir))
		}
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: no usable SDK versions under %s", ErrNotFound, root)
	}

	return &SDK{Root: root, Versions: versions}, nil
}

func readStringValue(key, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	val, _, err := k.GetStringValue(name)
	if err != nil {
		return "", err
	}

	return val, nil
}
