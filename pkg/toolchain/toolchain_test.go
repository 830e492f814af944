package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironSplitsPathListVariables(t *testing.T) {
	tc := FromEnviron(map[string]string{
		"INCLUDE": `C:\VS\include;C:\Kits\ucrt;`,
		"LIB":     `C:\VS\lib\x64`,
		"PATH":    `C:\VS\bin;C:\Windows\System32`,
	})

	assert.Equal(t, []string{`C:\VS\include`, `C:\Kits\ucrt`}, tc.IncludeDirs)
	assert.Equal(t, []string{`C:\VS\lib\x64`}, tc.LibDirs)
	assert.Equal(t, []string{`C:\VS\bin`, `C:\Windows\System32`}, tc.BinDirs)
}

func TestFromEnvironLocatesToolsOnPath(t *testing.T) {
	binDir := t.TempDir()
	for _, tool := range []string{"cl.exe", "link.exe", "lib.exe"} {
		require.NoError(t, os.WriteFile(filepath.Join(binDir, tool), []byte{'M', 'Z'}, 0755))
	}

	tc := FromEnviron(map[string]string{"PATH": binDir})

	assert.Equal(t, filepath.Join(binDir, "cl.exe"), tc.Compiler)
	assert.Equal(t, filepath.Join(binDir, "link.exe"), tc.Linker)
	assert.Equal(t, filepath.Join(binDir, "lib.exe"), tc.Archiver)
	assert.Empty(t, tc.ResourceCompiler)
}

func TestFromEnvironPrefersEarlierPathEntries(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cl.exe"), []byte{'M', 'Z'}, 0755))
	}

	tc := FromEnviron(map[string]string{"PATH": first + ";" + second})
	assert.Equal(t, filepath.Join(first, "cl.exe"), tc.Compiler)
}

func TestFlagsRendersMSVCSyntax(t *testing.T) {
	tc := &Toolchain{
		IncludeDirs: []string{`C:\VS\include`, `C:\Kits\ucrt`},
		LibDirs:     []string{`C:\VS\lib\x64`},
	}

	flags := tc.Flags()
	assert.Equal(t, []string{`/IC:\VS\include`, `/IC:\Kits\ucrt`}, flags.IncludeFlags)
	assert.Equal(t, []string{`/LIBPATH:C:\VS\lib\x64`}, flags.LibPathFlags)
}

func TestFromEnvironOfEmptyMapProducesEmptyToolchain(t *testing.T) {
	tc := FromEnviron(map[string]string{})

	assert.Empty(t, tc.IncludeDirs)
	assert.Empty(t, tc.BinDirs)
	assert.Empty(t, tc.Compiler)
	assert.Empty(t, tc.Flags().IncludeFlags)
}
