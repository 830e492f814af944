package vswhere

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "instanceId": "1a2b3c4d",
    "installDate": "2023-11-20T09:14:52Z",
    "installationPath": "C:\\Program Files\\Microsoft Visual Studio\\2022\\Community",
    "installationVersion": "17.8.34309.116",
    "displayName": "Visual Studio Community 2022",
    "productId": "Microsoft.VisualStudio.Product.Community",
    "isPrerelease": false
  },
  {
    "instanceId": "5e6f7a8b",
    "installationPath": "C:\\Program Files\\Microsoft Visual Studio\\2022\\Preview",
    "installationVersion": "17.9.0-pre.2.0",
    "displayName": "Visual Studio Community 2022 Preview",
    "productId": "Microsoft.VisualStudio.Product.Community",
    "isPrerelease": true
  }
]`

type fakeRunner struct {
	output string
	name   string
	args   []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.name = name
	r.args = args
	return []byte(r.output), nil
}

func TestInstallationDecodesVswhereJSON(t *testing.T) {
	var installs []Installation
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &installs))
	require.Len(t, installs, 2)

	assert.Equal(t, "Visual Studio Community 2022", installs[0].DisplayName)
	assert.Equal(t, `C:\Program Files\Microsoft Visual Studio\2022\Community`, installs[0].InstallationPath)
	assert.False(t, installs[0].IsPrerelease)
	assert.True(t, installs[1].IsPrerelease)
}

func TestSelectArgsDefaultsToLatest(t *testing.T) {
	l := NewLocator(&Config{})
	assert.Equal(t, []string{"-latest"}, l.selectArgs())
}

func TestSelectArgsPrependsPrerelease(t *testing.T) {
	l := NewLocator(&Config{Prerelease: true})
	assert.Equal(t, []string{"-prerelease", "-latest"}, l.selectArgs())
}

func TestSelectArgsSubstitutesLatest(t *testing.T) {
	l := NewLocator(&Config{SelectArgs: []string{"-version", "[15.0,16.0)"}})
	assert.Equal(t, []string{"-version", "[15.0,16.0)"}, l.selectArgs())
}

func TestDefaultPathResolvesUnderProgramFilesX86(t *testing.T) {
	t.Setenv(ProgramFilesX86Var, `C:\Program Files (x86)`)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(`C:\Program Files (x86)`, "Microsoft Visual Studio", "Installer", "vswhere.exe"),
		path)
}

func TestDefaultPathWithoutProgramFilesX86ReturnsError(t *testing.T) {
	t.Setenv(ProgramFilesX86Var, "")

	_, err := DefaultPath()
	assert.Error(t, err)
}

func TestInstallationPathTrimsVswhereOutput(t *testing.T) {
	requireWindows(t)

	runner := &fakeRunner{output: "C:\\VS\\2022\\Community\r\n"}
	l := newTestLocator(t, runner)

	path, err := l.InstallationPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `C:\VS\2022\Community`, path)
	assert.Equal(t, []string{"-latest", "-property", "installationPath", "-utf8"}, runner.args)
}

func TestInstallationPathWithEmptyOutputReturnsErrNoInstallation(t *testing.T) {
	requireWindows(t)

	l := newTestLocator(t, &fakeRunner{output: "\r\n"})

	_, err := l.InstallationPath(context.Background())
	assert.ErrorIs(t, err, ErrNoInstallation)
}

func TestListDecodesInstallations(t *testing.T) {
	requireWindows(t)

	l := newTestLocator(t, &fakeRunner{output: sampleJSON})

	installs, err := l.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, installs, 2)
}

func newTestLocator(t *testing.T, runner Runner) *Locator {
	t.Helper()

	// The locator stats the vswhere path before running it.
	path := filepath.Join(t.TempDir(), "vswhere.exe")
	require.NoError(t, os.WriteFile(path, []byte{'M', 'Z'}, 0755))

	return NewLocator(&Config{Path: path, Runner: runner})
}

func requireWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "windows" {
		t.Skip("locator requires Windows")
	}
}
