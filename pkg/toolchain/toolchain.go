// pkg/toolchain/toolchain.go

// Package toolchain derives compiler paths and flag slices from a vcvars
// environment, so build scripts don't have to split INCLUDE/LIB themselves.
package toolchain

import (
	"os"
	"path/filepath"
	"strings"
)

// FromEnviron builds a Toolchain from a vcvars environment map with
// uppercased keys. Tool paths are left empty when the tool is not present
// in any PATH directory.
func FromEnviron(env map[string]string) *Toolchain {
	t := &Toolchain{
		IncludeDirs: splitPathList(env["INCLUDE"]),
		LibDirs:     splitPathList(env["LIB"]),
		BinDirs:     splitPathList(env["PATH"]),
	}

	t.Compiler = findTool(t.BinDirs, "cl.exe")
	t.Linker = findTool(t.BinDirs, "link.exe")
	t.Archiver = findTool(t.BinDirs, "lib.exe")
	t.ResourceCompiler = findTool(t.BinDirs, "rc.exe")

	return t
}

// Flags renders the include and library directories as MSVC flag slices
func (t *Toolchain) Flags() *CompilerFlags {
	flags := &CompilerFlags{}

	for _, dir := range t.IncludeDirs {
		flags.IncludeFlags = append(flags.IncludeFlags, "/I"+dir)
	}
	for _, dir := range t.LibDirs {
		flags.LibPathFlags = append(flags.LibPathFlags, "/LIBPATH:"+dir)
	}

	return flags
}

// findTool returns the first dirs entry containing name, or ""
func findTool(dirs []string, name string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// splitPathList splits a Windows-format path list. The separator is always
// ";" regardless of the host OS, since the values come out of cmd.exe.
func splitPathList(value string) []string {
	var paths []string
	for _, p := range strings.Split(value, ";") {
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
