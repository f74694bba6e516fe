// Package pty spawns and manages a pseudo-terminal-backed shell process,
// the PTY side of the terminal emulator from spec §4.10. Grounded on the
// teacher's shell.PtySession (.staging/pty.go), generalized away from
// RavenTerminal-specific environment variables and reconciled with the
// ravencore config package in place of the teacher's own.
package pty

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/creack/pty"
	"github.com/javanhut/ravencore/config"
)

// Session manages a pseudo-terminal connection to a shell process.
type Session struct {
	cmd      *exec.Cmd
	pty      *os.File
	mu       sync.Mutex
	exited   bool
	exitedMu sync.Mutex
	log      *zap.SugaredLogger
}

// Option configures NewSession, following the same variadic-functional-
// option idiom as doc.Option (doc.WithClock, doc.WithUndoGroupWindow).
type Option func(*sessionOptions)

type sessionOptions struct {
	logger *zap.SugaredLogger
}

// WithLogger routes spawn-failure and exit-monitoring diagnostics to
// logger instead of discarding them, per SPEC_FULL.md's ambient-logging
// requirement.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// NewSession spawns a login shell connected to a cols x rows PTY,
// starting in startDir (falling back to the user's home directory).
func NewSession(cols, rows uint16, startDir string, opts ...Option) (*Session, error) {
	options := sessionOptions{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&options)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	shell := findShell(cfg)
	currentUser, err := user.Current()
	if err != nil {
		options.logger.Warnw("failed to resolve current user for pty session", "error", err)
		return nil, err
	}

	shellBase := shell
	if idx := strings.LastIndex(shell, "/"); idx >= 0 {
		shellBase = shell[idx+1:]
	}

	cmd := buildShellCommand(shell, shellBase, cfg.Shell.SourceRC)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Env = buildEnv(currentUser, shell, cols, rows, cfg)

	if startDir != "" {
		if info, err := os.Stat(startDir); err == nil && info.IsDir() {
			cmd.Dir = startDir
		} else {
			cmd.Dir = currentUser.HomeDir
		}
	} else {
		cmd.Dir = currentUser.HomeDir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		options.logger.Warnw("failed to start pty-backed shell", "shell", shell, "error", err)
		return nil, err
	}

	session := &Session{cmd: cmd, pty: ptmx, log: options.logger}
	go func() {
		err := cmd.Wait()
		session.log.Debugw("pty shell process exited", "error", err)
		session.exitedMu.Lock()
		session.exited = true
		session.exitedMu.Unlock()
	}()
	return session, nil
}

func buildShellCommand(shell, shellBase string, sourceRC bool) *exec.Cmd {
	if sourceRC {
		switch shellBase {
		case "bash", "zsh", "fish":
			return exec.Command(shell, "-i")
		default:
			return exec.Command(shell, "-i")
		}
	}
	switch shellBase {
	case "bash":
		return exec.Command(shell, "--noprofile", "--norc", "-i")
	case "zsh":
		return exec.Command(shell, "--no-rcs", "-i")
	case "fish":
		return exec.Command(shell, "--no-config", "-i")
	default:
		return exec.Command(shell, "-i")
	}
}

func buildEnv(u *user.User, shell string, cols, rows uint16, cfg *config.Config) []string {
	env := os.Environ()
	env = replaceEnv(env, "PATH", "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin:"+os.Getenv("PATH"))
	env = replaceEnv(env, "TERM", "xterm-256color")
	env = replaceEnv(env, "COLORTERM", "truecolor")
	env = replaceEnv(env, "HOME", u.HomeDir)
	env = replaceEnv(env, "USER", u.Username)
	env = replaceEnv(env, "SHELL", shell)
	env = replaceEnv(env, "COLUMNS", strconv.Itoa(int(cols)))
	env = replaceEnv(env, "LINES", strconv.Itoa(int(rows)))
	env = replaceEnv(env, "LANG", "en_US.UTF-8")

	xdgRuntimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if xdgRuntimeDir == "" {
		xdgRuntimeDir = "/run/user/" + u.Uid
	}
	env = replaceEnv(env, "XDG_RUNTIME_DIR", xdgRuntimeDir)

	if display := os.Getenv("DISPLAY"); display != "" {
		env = replaceEnv(env, "DISPLAY", display)
	}
	if wayland := os.Getenv("WAYLAND_DISPLAY"); wayland != "" {
		env = replaceEnv(env, "WAYLAND_DISPLAY", wayland)
		env = replaceEnv(env, "XDG_SESSION_TYPE", "wayland")
	}

	for k, v := range cfg.Shell.AdditionalEnv {
		env = replaceEnv(env, k, v)
	}
	return env
}

func replaceEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			env = append(env[:i], env[i+1:]...)
		}
	}
	return append(env, prefix+value)
}

// CurrentDir returns the shell process's working directory, or "" if it
// cannot be determined.
func (s *Session) CurrentDir() string {
	if s == nil || s.cmd == nil || s.cmd.Process == nil {
		return ""
	}
	path, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", s.cmd.Process.Pid))
	if err != nil {
		return ""
	}
	return path
}

func findShell(cfg *config.Config) string {
	if cfg.Shell.Path != "" {
		if _, err := os.Stat(cfg.Shell.Path); err == nil {
			return cfg.Shell.Path
		}
	}
	if currentUser, err := user.Current(); err == nil {
		if shell := getUserShell(currentUser.Username); shell != "" {
			if _, err := os.Stat(shell); err == nil {
				return shell
			}
		}
	}
	for _, shell := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	return "/bin/sh"
}

func getUserShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read reads raw PTY output.
func (s *Session) Read(buf []byte) (int, error) { return s.pty.Read(buf) }

// Write sends raw input to the PTY.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize updates the PTY's window size.
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{Cols: cols, Rows: rows})
}

// HasExited reports whether the shell process has exited.
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close kills the shell process and closes the PTY.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

// Reader returns an io.Reader over the PTY.
func (s *Session) Reader() io.Reader { return s.pty }

// Writer returns an io.Writer over the PTY.
func (s *Session) Writer() io.Writer { return s.pty }
