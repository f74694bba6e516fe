// Package config holds ravencore's effective runtime configuration: the
// JSON settings file (grounded on the teacher's config/config.go
// Load/Save/DefaultConfig pattern), a TOML per-language LSP command
// table, and an fsnotify-backed watcher for hot reload. Per spec §1's
// scope note, only the effective config shape is modeled here, not a
// general config-file parsing layer.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ShellConfig controls how pty.Session spawns the user's shell.
type ShellConfig struct {
	Path          string            `json:"path"`
	SourceRC      bool              `json:"source_rc"`
	AdditionalEnv map[string]string `json:"additional_env"`
}

// Config is ravencore's effective runtime configuration.
type Config struct {
	LogLevel            string      `json:"log_level"`
	UndoGroupWindowMS   int64       `json:"undo_group_window_ms"`
	Shell               ShellConfig `json:"shell"`
	LanguageServersPath string      `json:"language_servers_path"`
}

// UndoGroupWindow returns the configured undo-coalescing window as a
// time.Duration, per spec §9's Open Question on grouping window
// configurability (doc.WithUndoGroupWindow takes the same type).
func (c *Config) UndoGroupWindow() time.Duration {
	return time.Duration(c.UndoGroupWindowMS) * time.Millisecond
}

// DefaultConfig returns the configuration used when no config file is
// present: info logging, the spec §9 default 500ms undo-group window,
// and a shell that sources the user's rc files.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		UndoGroupWindowMS: 500,
		Shell: ShellConfig{
			SourceRC:      true,
			AdditionalEnv: make(map[string]string),
		},
	}
}

// ConfigDir returns ~/.config/ravencore, creating it if necessary.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ravencore"
	}
	dir := filepath.Join(home, ".config", "ravencore")
	os.MkdirAll(dir, 0755)
	return dir
}

// Path returns the path to the main JSON config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads the config file, falling back to DefaultConfig if it does
// not exist.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config back to disk.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0644)
}

// AvailableShells lists installed shells, for populating a shell picker
// in a settings UI. Grounded on the teacher's config.GetAvailableShells
// (.staging/config.go), deduplicated by basename the same way.
func AvailableShells() []string {
	candidates := []string{
		"/bin/bash", "/usr/bin/bash",
		"/bin/zsh", "/usr/bin/zsh",
		"/bin/fish", "/usr/bin/fish",
		"/bin/sh", "/usr/bin/sh",
		"/bin/dash", "/usr/bin/dash",
		"/bin/tcsh", "/usr/bin/tcsh",
		"/bin/ksh", "/usr/bin/ksh",
	}
	seen := make(map[string]bool)
	var shells []string
	for _, shell := range candidates {
		if _, err := os.Stat(shell); err != nil {
			continue
		}
		base := filepath.Base(shell)
		if seen[base] {
			continue
		}
		seen[base] = true
		shells = append(shells, shell)
	}
	return shells
}
