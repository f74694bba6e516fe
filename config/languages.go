package config

import "github.com/BurntSushi/toml"

// LanguageServer describes how to launch an LSP server for one language
// id, keyed by language id (e.g. "go", "rust", "python") in the TOML
// table below.
type LanguageServer struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// LanguageServerTable maps a language id to its LSP launch command.
type LanguageServerTable map[string]LanguageServer

// LoadLanguageServers reads a per-language LSP command table from a TOML
// file. Grounded on the pack's BurntSushi/toml usage for richer
// structured config tables (vision3's BBS config) — the teacher's own
// config.go only ever needed flat JSON, but a per-language command table
// is naturally a TOML table-of-tables.
func LoadLanguageServers(path string) (LanguageServerTable, error) {
	var table LanguageServerTable
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// DefaultLanguageServers returns a small built-in table covering common
// languages, used by the lsp subcommand when no table file is given.
func DefaultLanguageServers() LanguageServerTable {
	return LanguageServerTable{
		"go":         {Command: "gopls"},
		"rust":       {Command: "rust-analyzer"},
		"python":     {Command: "pylsp"},
		"typescript": {Command: "typescript-language-server", Args: []string{"--stdio"}},
	}
}
