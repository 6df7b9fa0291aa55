package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory with discovery isolated
// from the real environment.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[kodi]\n"), 0644))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "kodisrc", "config.toml"))

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/kodisrc/config.toml", DefaultPath())
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, []string{
		"./kodisrc.toml",
		"/xdg/kodisrc/config.toml",
		"/etc/kodisrc/config.toml",
	}, SearchPaths())
}

func TestDiscover_EnvWinsOverLocal(t *testing.T) {
	dir := inTempDir(t)
	touch(t, filepath.Join(dir, "kodisrc.toml"))
	custom := filepath.Join(dir, "custom.toml")
	touch(t, custom)
	t.Setenv(EnvConfig, custom)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, custom, path)
}

func TestDiscover_EnvMissingFile(t *testing.T) {
	inTempDir(t)
	t.Setenv(EnvConfig, "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvConfig)
}

func TestDiscover_LocalWinsOverXDG(t *testing.T) {
	dir := inTempDir(t)
	touch(t, filepath.Join(dir, "kodisrc.toml"))
	touch(t, DefaultPath())

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./kodisrc.toml", path)
}

func TestDiscover_XDG(t *testing.T) {
	inTempDir(t)
	touch(t, DefaultPath())

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, DefaultPath(), path)
}

func TestDiscover_DirectoryIsSkipped(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "kodisrc.toml"), 0755))
	touch(t, DefaultPath())

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, DefaultPath(), path)
}

func TestDiscover_NotFound(t *testing.T) {
	inTempDir(t)

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")
	assert.Contains(t, err.Error(), "/etc/kodisrc/config.toml")
}
