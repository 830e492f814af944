// pkg/envcache/cache.go

// Package envcache persists resolved vcvars environments between build
// script runs. Running vcvarsall.bat costs seconds; reading a file does not.
package envcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirEnvVar overrides the cache location when set
const DirEnvVar = "VCENV_CACHE_DIR"

// Cache stores per-variable values and whole-environment snapshots, one
// subdirectory per target architecture
type Cache struct {
	rootDir string
}

// New creates a cache rooted at rootDir, falling back to DefaultDir when
// empty
func New(rootDir string) *Cache {
	if rootDir == "" {
		rootDir = DefaultDir()
	}
	return &Cache{rootDir: rootDir}
}

// DefaultDir resolves the cache directory: $VCENV_CACHE_DIR, else the user
// cache directory, else a temp dir
func DefaultDir() string {
	if dir := os.Getenv(DirEnvVar); dir != "" {
		return dir
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "vcenv")
	}

	return filepath.Join(base, "vcenv")
}

// Dir returns the cache root directory
func (c *Cache) Dir() string {
	return c.rootDir
}

// GetVar reads a cached variable value. The second return is false on a
// cache miss.
func (c *Cache) GetVar(arch, name string) (string, bool, error) {
	path := c.varPath(arch, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading cache file %s: %w", path, err)
	}

	return string(data), true, nil
}

// PutVar writes a variable value to the cache
func (c *Cache) PutVar(arch, name, value string) error {
	path := c.varPath(arch, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", path, err)
	}

	return nil
}

// GetSnapshot reads a cached whole-environment snapshot. Returns nil on a
// cache miss.
func (c *Cache) GetSnapshot(arch string) (map[string]string, error) {
	path := c.snapshotPath(arch)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache file %s: %w", path, err)
	}

	var env map[string]string
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: %w", path, err)
	}

	return env, nil
}

// PutSnapshot writes a whole-environment snapshot to the cache
func (c *Cache) PutSnapshot(arch string, env map[string]string) error {
	path := c.snapshotPath(arch)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", path, err)
	}

	return nil
}

// Clean removes the whole cache directory
func (c *Cache) Clean() error {
	if err := os.RemoveAll(c.rootDir); err != nil {
		return fmt.Errorf("removing cache directory %s: %w", c.rootDir, err)
	}
	return nil
}

func (c *Cache) varPath(arch, name string) string {
	return filepath.Join(c.rootDir, sanitize(arch), sanitize(name)+".txt")
}

func (c *Cache) snapshotPath(arch string) string {
	return filepath.Join(c.rootDir, sanitize(arch), "env.json")
}

// sanitize makes a variable name safe as a filename on all platforms.
// Distinct names that collapse to the same filename would collide; env var
// names in practice never contain these characters.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '!'
		}
		if r < 0x20 {
			return '!'
		}
		return r
	}, name)
}
