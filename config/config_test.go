package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javanhut/ravencore/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigUndoGroupWindowIs500ms(t *testing.T) {
	cfg := config.DefaultConfig()
	require.Equal(t, 500*time.Millisecond, cfg.UndoGroupWindow())
}

func TestLoadFallsBackToDefaultWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Shell.Path = "/bin/zsh"
	require.NoError(t, cfg.Save())

	loaded, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "debug", loaded.LogLevel)
	require.Equal(t, "/bin/zsh", loaded.Shell.Path)
}

func TestLoadLanguageServersFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "languages.toml")
	contents := `
[go]
command = "gopls"

[rust]
command = "rust-analyzer"
args = ["--stdio"]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	table, err := config.LoadLanguageServers(path)
	require.NoError(t, err)
	require.Equal(t, "gopls", table["go"].Command)
	require.Equal(t, []string{"--stdio"}, table["rust"].Args)
}

func TestDefaultLanguageServersCoversGo(t *testing.T) {
	table := config.DefaultLanguageServers()
	require.Equal(t, "gopls", table["go"].Command)
}
