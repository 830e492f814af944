// pkg/toolchain/types.go
package toolchain

// Toolchain is a structured view over a resolved vcvars environment
type Toolchain struct {
	IncludeDirs []string // Split from INCLUDE
	LibDirs     []string // Split from LIB
	BinDirs     []string // Split from PATH

	Compiler         string // Absolute path to cl.exe, if found
	Linker           string // Absolute path to link.exe, if found
	Archiver         string // Absolute path to lib.exe, if found
	ResourceCompiler string // Absolute path to rc.exe, if found
}

// CompilerFlags holds ready-to-use MSVC flag slices
type CompilerFlags struct {
	IncludeFlags []string // /I flags
	LibPathFlags []string // /LIBPATH: flags
}
