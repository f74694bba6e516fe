// Package inspect is an optional, read-only debug transport: an
// HTTP+WebSocket endpoint that streams term.Emulator grid snapshots and
// doc.Doc diagnostics for tooling and tests. It is never on the core
// editing path — handlers only ever read a snapshot taken under the
// caller-supplied lock, preserving spec §5's single-threaded-per-document
// invariant.
//
// Grounded on amantus-ai-vibetunnel's pkg/api/raw_websocket.go (the
// upgrade/ping-pong/writer-goroutine pattern) and pkg/termsocket/manager.go
// (registering named terminal sessions behind an HTTP+WS surface), with
// gorilla/mux providing the route table in place of vibetunnel's own
// router setup.
package inspect

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Snapshot is a point-in-time read of one inspectable session, taken
// under the caller's own lock (e.g. inside Emulator/Doc's goroutine)
// before being handed to the server.
type Snapshot struct {
	SessionID string          `json:"session_id"`
	Rows      []string        `json:"rows"`
	CursorX   int64           `json:"cursor_x"`
	CursorY   int64           `json:"cursor_y"`
	DocPath   string          `json:"doc_path,omitempty"`
	DocDirty  bool            `json:"doc_dirty,omitempty"`
	Extra     json.RawMessage `json:"extra,omitempty"`
}

// SnapshotFunc produces the current Snapshot for a session id. Called
// from the HTTP goroutine, so it must take whatever lock the underlying
// Emulator/Doc needs internally and return a copy.
type SnapshotFunc func(sessionID string) (Snapshot, bool)

// Server exposes GET /sessions, GET /sessions/{id}, and a streaming
// WS /sessions/{id}/stream, all read-only.
type Server struct {
	snapshot SnapshotFunc
	sessions func() []string
	interval time.Duration
}

// NewServer builds an inspect.Server. sessions lists currently-inspectable
// session ids; snapshot reads one of them.
func NewServer(sessions func() []string, snapshot SnapshotFunc) *Server {
	return &Server{sessions: sessions, snapshot: snapshot, interval: 250 * time.Millisecond}
}

// Router builds the gorilla/mux route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/sessions", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", s.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/stream", s.handleStream)
	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.sessions())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	snap, ok := s.snapshot(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// handleStream upgrades to a WebSocket and pushes a binary JSON snapshot
// every s.interval, plus periodic pings, until the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[inspect] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	pinger := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer pinger.Stop()

	for {
		select {
		case <-done:
			return
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ticker.C:
			snap, ok := s.snapshot(id)
			if !ok {
				return
			}
			data, err := json.Marshal(snap)
			if err != nil {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		}
	}
}

// ListenAndServe starts the HTTP server on addr. It blocks until the
// server stops or errors.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}
