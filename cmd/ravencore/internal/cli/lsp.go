package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/javanhut/ravencore/config"
	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/encoding"
	"github.com/javanhut/ravencore/linepool"
	"github.com/javanhut/ravencore/lsp"
	"github.com/javanhut/ravencore/position"
	"github.com/spf13/cobra"
)

var (
	lspWorkspace   string
	lspServersPath string
	lspInitTimeout time.Duration
	lspVerboseFlag bool
	lspFile        string
	lspLine        int64
	lspCol         int64
	lspRenameTo    string
)

var lspCmd = &cobra.Command{
	Use:   "lsp <language>",
	Short: "Spawn a language server and print its negotiated capabilities",
	Long: `Looks up <language> in the per-language command table (config.LoadLanguageServers,
or the built-in defaults if --servers is unset), spawns it, waits for the
initialize handshake, and prints the negotiated capabilities as JSON.

With --file, also opens that file (textDocument/didOpen) and issues a
textDocument/definition request at --line/--col, printing the decoded
result and any diagnostics published for it. With --file and --rename
together, issues textDocument/rename instead, applies the returned edits
to the in-memory document, and prints the renamed text.`,
	Args: cobra.ExactArgs(1),
	RunE: runLSP,
}

func init() {
	lspCmd.Flags().StringVar(&lspWorkspace, "workspace", ".", "workspace root URI passed to initialize")
	lspCmd.Flags().StringVar(&lspServersPath, "servers", "", "path to a TOML language-server table (config.LoadLanguageServers)")
	lspCmd.Flags().DurationVar(&lspInitTimeout, "timeout", 5*time.Second, "how long to wait for a server response")
	lspCmd.Flags().BoolVarP(&lspVerboseFlag, "verbose", "v", false, "enable development-mode (more verbose) logging")
	lspCmd.Flags().StringVar(&lspFile, "file", "", "open this file and issue a definition (or rename) request against it")
	lspCmd.Flags().Int64Var(&lspLine, "line", 0, "0-based line for --file's request")
	lspCmd.Flags().Int64Var(&lspCol, "col", 0, "0-based rune column for --file's request")
	lspCmd.Flags().StringVar(&lspRenameTo, "rename", "", "rename the symbol at --line/--col to this instead of looking up its definition")
}

func runLSP(cmd *cobra.Command, args []string) error {
	language := args[0]

	table := config.DefaultLanguageServers()
	if lspServersPath != "" {
		loaded, err := config.LoadLanguageServers(lspServersPath)
		if err != nil {
			return fmt.Errorf("loading language server table %s: %w", lspServersPath, err)
		}
		table = loaded
	}

	server, ok := table[language]
	if !ok {
		return fmt.Errorf("no language server configured for %q", language)
	}

	logger := newLogger(lspVerboseFlag)
	defer logger.Sync()

	ls, err := lsp.NewLanguageServer(server.Command, server.Args, lspWorkspace, logger)
	if err != nil {
		return fmt.Errorf("spawning %s: %w", server.Command, err)
	}
	defer ls.Shutdown()

	caps, ok := ls.WaitInitialized(lspInitTimeout)
	if !ok {
		return fmt.Errorf("%s did not respond to initialize within %s", server.Command, lspInitTimeout)
	}

	encName := "utf-16"
	if caps.Encoding == encoding.UTF8 {
		encName = "utf-8"
	}

	out := map[string]any{
		"language":         language,
		"command":          server.Command,
		"encoding":         encName,
		"pull_diagnostics": caps.PullDiagnostics,
	}

	if lspFile != "" {
		request, err := runLSPFileRequest(ls, language, lspInitTimeout)
		if err != nil {
			return err
		}
		out["request"] = request
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// runLSPFileRequest opens --file against the running server and issues
// either a rename (if --rename is set) or a definition lookup at
// --line/--col, blocking for at most timeout for the response.
func runLSPFileRequest(ls *lsp.LanguageServer, languageID string, timeout time.Duration) (map[string]any, error) {
	d := doc.New(doc.KindMultiLine, linepool.New())
	if err := d.Load(lspFile); err != nil {
		return nil, fmt.Errorf("loading %s: %w", lspFile, err)
	}
	ls.DidOpen(lspFile, languageID, d)
	defer ls.DidClose(lspFile)

	pos := position.Position{X: lspCol, Y: lspLine}

	if lspRenameTo != "" {
		return awaitRename(ls, d, pos, timeout)
	}
	return awaitDefinition(ls, d, pos, timeout)
}

func awaitDefinition(ls *lsp.LanguageServer, d *doc.Doc, pos position.Position, timeout time.Duration) (map[string]any, error) {
	done := make(chan struct{})
	var loc lsp.Location
	var found bool
	ls.Definition(lspFile, pos, d, func(l lsp.Location, ok bool) {
		loc, found = l, ok
		close(done)
	})

	select {
	case <-done:
	case <-time.After(timeout):
		return nil, fmt.Errorf("definition request at %s:%d:%d timed out after %s", lspFile, lspLine, lspCol, timeout)
	}

	diags := ls.DecodedDiagnostics("file://"+lspFile, d)
	if !found {
		return map[string]any{"kind": "definition", "found": false, "diagnostics": diags}, nil
	}
	return map[string]any{
		"kind":        "definition",
		"found":       true,
		"uri":         loc.URI,
		"start":       map[string]int64{"line": loc.Start.Y, "col": loc.Start.X},
		"end":         map[string]int64{"line": loc.End.Y, "col": loc.End.X},
		"diagnostics": diags,
	}, nil
}

func awaitRename(ls *lsp.LanguageServer, d *doc.Doc, pos position.Position, timeout time.Duration) (map[string]any, error) {
	done := make(chan struct{})
	var edits []lsp.FileEdit
	var found bool
	ls.Rename(lspFile, lspRenameTo, pos, d, func(e []lsp.FileEdit, ok bool) {
		edits, found = e, ok
		close(done)
	})

	select {
	case <-done:
	case <-time.After(timeout):
		return nil, fmt.Errorf("rename request at %s:%d:%d timed out after %s", lspFile, lspLine, lspCol, timeout)
	}

	if !found {
		return map[string]any{"kind": "rename", "applied": false}, nil
	}

	uri := "file://" + lspFile
	applyTo := map[string]lsp.ApplyFunc{
		uri: func(start, end position.Position, newText string) error {
			if start != end {
				d.Delete(start, end)
			}
			_, err := d.Insert(start, newText)
			return err
		},
	}
	if err := ls.ApplyWorkspaceEdit(edits, applyTo); err != nil {
		return nil, fmt.Errorf("applying rename edits: %w", err)
	}

	return map[string]any{
		"kind":         "rename",
		"applied":      true,
		"files_edited": len(edits),
		"text":         d.Text(),
	}, nil
}
