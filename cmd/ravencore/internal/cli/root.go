// Package cli wires ravencore's core packages into a spf13/cobra command
// tree, following the example pack's cobra-cli usage
// (phoenix-tui-phoenix/examples/cobra-cli/main.go: a package-level
// rootCmd, an Execute() entry point, flags registered from init).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "ravencore",
	Short: "Document, syntax, LSP, and terminal core for a GPU-accelerated editor",
	Long: `ravencore exercises the editor core library from the command line:

  ravencore highlight <file>   print a file with syntax highlighting
  ravencore lsp <language>     spawn a language server and print its capabilities
  ravencore term               run an inspectable terminal-pane session

It never touches platform graphics; that is the window/renderer's job.`,
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(highlightCmd, lspCmd, termCmd)
}
