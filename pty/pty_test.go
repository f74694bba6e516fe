package pty_test

import (
	"testing"

	"github.com/javanhut/ravencore/pty"
	"github.com/stretchr/testify/require"
)

func TestNewSessionSpawnsShellAndReportsNotExited(t *testing.T) {
	s, err := pty.NewSession(80, 24, "")
	if err != nil {
		t.Skipf("no usable shell/pty in this sandbox: %v", err)
	}
	defer s.Close()
	require.False(t, s.HasExited())
}

func TestSessionWriteAndReadEcho(t *testing.T) {
	s, err := pty.NewSession(80, 24, "")
	if err != nil {
		t.Skipf("no usable shell/pty in this sandbox: %v", err)
	}
	defer s.Close()

	_, err = s.Write([]byte("echo hi\n"))
	require.NoError(t, err)

	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Greater(t, n, 0)
}

func TestSessionResize(t *testing.T) {
	s, err := pty.NewSession(80, 24, "")
	if err != nil {
		t.Skipf("no usable shell/pty in this sandbox: %v", err)
	}
	defer s.Close()
	require.NoError(t, s.Resize(100, 40))
}
