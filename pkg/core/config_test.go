package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_arch: arm64\nvswhere_args: [\"-version\", \"[17.0,18.0)\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "arm64", cfg.DefaultArch)
	assert.Equal(t, []string{"-version", "[17.0,18.0)"}, cfg.VswhereArgs)
	// Unset fields keep their defaults.
	assert.True(t, cfg.Prerelease)
}

func TestLoadConfigWithInvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_arch: [unterminated"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigThenLoadConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	want := &Config{
		DefaultArch: "x86",
		VswherePath: `D:\tools\vswhere.exe`,
		VswhereArgs: []string{"-products", "*"},
		Prerelease:  false,
		CachePath:   `D:\cache`,
		Debug:       true,
	}
	require.NoError(t, SaveConfig(want, path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
