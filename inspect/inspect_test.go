package inspect_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/javanhut/ravencore/inspect"
	"github.com/stretchr/testify/require"
)

func testServer() *inspect.Server {
	return inspect.NewServer(
		func() []string { return []string{"sess-1"} },
		func(id string) (inspect.Snapshot, bool) {
			if id != "sess-1" {
				return inspect.Snapshot{}, false
			}
			return inspect.Snapshot{SessionID: id, Rows: []string{"hello"}, CursorX: 5, CursorY: 0}, true
		},
	)
}

func TestListSessions(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	require.Equal(t, []string{"sess-1"}, ids)
}

func TestGetSnapshot(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/sess-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap inspect.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Equal(t, []string{"hello"}, snap.Rows)
	require.Equal(t, int64(5), snap.CursorX)
}

func TestGetSnapshotUnknownSessionIs404(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStreamPushesSnapshot(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/sess-1/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	var snap inspect.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Equal(t, "sess-1", snap.SessionID)
	require.Equal(t, []string{"hello"}, snap.Rows)
}
