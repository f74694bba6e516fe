package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/javanhut/ravencore/inspect"
	"github.com/javanhut/ravencore/pty"
	"github.com/javanhut/ravencore/workspace"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	termAddr        string
	termCols        int
	termRows        int
	termVerboseFlag bool
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run an inspectable terminal-pane session",
	Long: `Starts a workspace.TabManager with one terminal tab and serves its
panes read-only over inspect.Server (GET /sessions, GET /sessions/{id},
WS /sessions/{id}/stream) until interrupted. A robfig/cron background
task sweeps exited tabs every 30 seconds, maintenance that would
otherwise only run when a user closes a tab by hand.`,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&termAddr, "addr", "127.0.0.1:4173", "address the inspect HTTP+WS server listens on")
	termCmd.Flags().IntVar(&termCols, "cols", 80, "initial terminal width")
	termCmd.Flags().IntVar(&termRows, "rows", 24, "initial terminal height")
	termCmd.Flags().BoolVarP(&termVerboseFlag, "verbose", "v", false, "enable development-mode (more verbose) logging")
}

// sessionID identifies a pane for the inspect endpoint as "<tabID>.<paneID>".
func sessionID(tabID, paneID int) string {
	return fmt.Sprintf("%d.%d", tabID, paneID)
}

func parseSessionID(id string) (tabID, paneID int, ok bool) {
	parts := strings.SplitN(id, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	t, err1 := strconv.Atoi(parts[0])
	p, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return t, p, true
}

func terminalSessions(tm *workspace.TabManager) func() []string {
	return func() []string {
		var ids []string
		for _, tab := range tm.GetTabs() {
			for _, pane := range tab.GetPanes() {
				if pane.Kind() == workspace.PaneTerminal {
					ids = append(ids, sessionID(tab.ID(), pane.ID()))
				}
			}
		}
		return ids
	}
}

func terminalSnapshot(tm *workspace.TabManager) inspect.SnapshotFunc {
	return func(id string) (inspect.Snapshot, bool) {
		tabID, paneID, ok := parseSessionID(id)
		if !ok {
			return inspect.Snapshot{}, false
		}
		for _, tab := range tm.GetTabs() {
			if tab.ID() != tabID {
				continue
			}
			for _, pane := range tab.GetPanes() {
				if pane.ID() != paneID || pane.Kind() != workspace.PaneTerminal {
					continue
				}
				rows, cx, cy := pane.Snapshot()
				return inspect.Snapshot{SessionID: id, Rows: rows, CursorX: cx, CursorY: cy}, true
			}
		}
		return inspect.Snapshot{}, false
	}
}

func runTerm(cmd *cobra.Command, args []string) error {
	logger := newLogger(termVerboseFlag)
	defer logger.Sync()

	tm, err := workspace.NewTabManager(uint16(termCols), uint16(termRows), pty.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("starting terminal pane: %w", err)
	}

	srv := inspect.NewServer(terminalSessions(tm), terminalSnapshot(tm))

	sched := cron.New(cron.WithSeconds())
	if _, err := sched.AddFunc("*/30 * * * * *", func() {
		before := tm.TabCount()
		tm.CleanupExited()
		if after := tm.TabCount(); after != before {
			logger.Infow("swept exited tabs", "before", before, "after", after)
		}
	}); err != nil {
		return fmt.Errorf("scheduling maintenance sweep: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(termAddr) }()

	fmt.Fprintf(cmd.OutOrStdout(), "inspect endpoint listening on %s (sessions: %s)\n", termAddr, strings.Join(terminalSessions(tm)(), ", "))
	logger.Infow("serving inspect endpoint", "addr", termAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("inspect server: %w", err)
		}
		return nil
	case <-sigCh:
		logger.Infow("shutting down")
		return nil
	}
}
