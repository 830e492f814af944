package envcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVarMissesBeforePut(t *testing.T) {
	c := New(t.TempDir())

	_, ok, err := c.GetVar("x64", "INCLUDE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutVarThenGetVarRoundTrips(t *testing.T) {
	c := New(t.TempDir())

	require.NoError(t, c.PutVar("x64", "INCLUDE", `C:\VS\include;C:\Kits\ucrt`))

	value, ok, err := c.GetVar("x64", "INCLUDE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `C:\VS\include;C:\Kits\ucrt`, value)
}

func TestVarsAreKeyedByArchitecture(t *testing.T) {
	c := New(t.TempDir())

	require.NoError(t, c.PutVar("x64", "LIB", "sixty-four"))
	require.NoError(t, c.PutVar("arm64", "LIB", "arm"))

	value, ok, err := c.GetVar("x64", "LIB")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sixty-four", value)

	value, _, err = c.GetVar("arm64", "LIB")
	require.NoError(t, err)
	assert.Equal(t, "arm", value)
}

func TestSnapshotMissReturnsNilWithoutError(t *testing.T) {
	c := New(t.TempDir())

	snap, err := c.GetSnapshot("x64")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestPutSnapshotThenGetSnapshotRoundTrips(t *testing.T) {
	c := New(t.TempDir())
	env := map[string]string{"INCLUDE": `C:\inc`, "LIB": `C:\lib`}

	require.NoError(t, c.PutSnapshot("x64", env))

	snap, err := c.GetSnapshot("x64")
	require.NoError(t, err)
	assert.Equal(t, env, snap)
}

func TestCleanRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	require.NoError(t, c.PutVar("x64", "INCLUDE", "value"))
	require.NoError(t, c.Clean())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	_, ok, err := c.GetVar("x64", "INCLUDE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSanitizeReplacesFilenameHostileCharacters(t *testing.T) {
	assert.Equal(t, "PROGRAMFILES(X86)", sanitize("PROGRAMFILES(X86)"))
	assert.Equal(t, "A!B!C", sanitize(`A\B/C`))
	assert.Equal(t, "WEIRD!VAR!", sanitize("WEIRD:VAR*"))
}

func TestVarFileUsesSanitizedName(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	require.NoError(t, c.PutVar("x64", "PROGRAMFILES(X86)", `C:\Program Files (x86)`))

	_, err := os.Stat(filepath.Join(dir, "x64", "PROGRAMFILES(X86).txt"))
	assert.NoError(t, err)
}

func TestDefaultDirHonorsEnvOverride(t *testing.T) {
	t.Setenv(DirEnvVar, filepath.Join(t.TempDir(), "override"))
	assert.Equal(t, os.Getenv(DirEnvVar), DefaultDir())
}
