package lsp

import (
	"encoding/json"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/javanhut/ravencore/position"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int64          `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type pendingRequest struct {
	path   string
	method string
	handle func(result json.RawMessage, rpcErr *rpcError)
}

// expectedResponse is one document's tracked in-flight request for a given
// method, per spec §4.9's debounce/staleness bookkeeping.
type expectedResponse struct {
	id        int64
	position  *position.Position
	version   uint64
	debounced func() // set when a follow-up was requested while this one was in flight
}

type documentState struct {
	version  uint64
	expected map[string]*expectedResponse
}

// LanguageServer is a running language-server child process plus the
// JSON-RPC bookkeeping layered over it.
type LanguageServer struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	mu     sync.Mutex
	nextID int64

	pending map[int64]pendingRequest
	outbox  [][]byte // queued outbound messages awaiting the initialize response

	initialized bool
	caps        Capabilities

	docs        map[string]*documentState
	diagnostics map[string][]Diagnostic

	notificationHandlers map[string]func(json.RawMessage)

	log *zap.SugaredLogger
}

// NewLanguageServer spawns command as a language server, sends the
// `initialize` request immediately (per spec §4.9 lifecycle step 1), and
// starts a goroutine pumping its stdout through the base-protocol decoder.
// Grounded on shell.NewPtySession's os/exec + SysProcAttr{Setsid: true}
// spawn idiom. logger takes malformed-frame and dispatch warnings; a nil
// logger is replaced with a no-op one rather than requiring every caller
// to thread one through, per spec §9's guidance against a global mutable
// package-level logger — each LanguageServer still gets one of its own.
func NewLanguageServer(command string, args []string, workspaceURI string, logger *zap.SugaredLogger) (*LanguageServer, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	cmd := exec.Command(command, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	ls := &LanguageServer{
		cmd:                  cmd,
		stdin:                stdin,
		pending:              make(map[int64]pendingRequest),
		docs:                 make(map[string]*documentState),
		diagnostics:          make(map[string][]Diagnostic),
		notificationHandlers: make(map[string]func(json.RawMessage)),
		log:                  logger,
	}
	ls.notificationHandlers["textDocument/publishDiagnostics"] = ls.handlePublishDiagnostics

	go ls.pump(stdout)

	ls.sendRaw(0, "", "initialize", clientCapabilitiesParams(workspaceURI), ls.handleInitializeResponse)
	return ls, nil
}

// pump reads stdout in a loop, decoding and dispatching messages. It exits
// when the pipe closes (the server process exited), logging the reason
// if it wasn't a clean io.EOF.
func (ls *LanguageServer) pump(stdout io.Reader) {
	dec := NewDecoder()
	buf := make([]byte, 4096)
	for {
		n, err := stdout.Read(buf)
		if n > 0 {
			for _, msg := range dec.Feed(buf[:n]) {
				ls.dispatch(msg)
			}
		}
		if err != nil {
			if err != io.EOF {
				ls.log.Warnw("language server stdout pump stopped", "error", err)
			}
			return
		}
	}
}

func (ls *LanguageServer) dispatch(raw []byte) {
	var msg rpcMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		ls.log.Warnw("discarding malformed LSP frame", "error", err)
		return
	}

	if msg.ID != nil && msg.Method == "" {
		ls.mu.Lock()
		pr, ok := ls.pending[*msg.ID]
		if ok {
			delete(ls.pending, *msg.ID)
		}
		ls.mu.Unlock()
		if ok && pr.handle != nil {
			pr.handle(msg.Result, msg.Error)
		}
		return
	}

	if msg.Method != "" {
		ls.mu.Lock()
		h := ls.notificationHandlers[msg.Method]
		ls.mu.Unlock()
		if h != nil {
			h(msg.Params)
		}
	}
}

func (ls *LanguageServer) handleInitializeResponse(result json.RawMessage, rpcErr *rpcError) {
	var parsed map[string]any
	_ = json.Unmarshal(result, &parsed)

	ls.mu.Lock()
	ls.caps = parseServerCapabilities(parsed)
	ls.initialized = true
	queued := ls.outbox
	ls.outbox = nil
	ls.mu.Unlock()

	ls.sendNotification("initialized", map[string]any{})
	for _, raw := range queued {
		ls.writeRaw(raw)
	}
}

// writeRaw frames and writes payload directly to the child's stdin.
func (ls *LanguageServer) writeRaw(payload []byte) {
	ls.stdin.Write(EncodeMessage(payload))
}

// sendRaw assigns the request its id (0 reserved for the bootstrap
// `initialize` call, which always goes out first and unframed of any
// queueing), marshals it, and either writes it immediately (if initialized
// or this is the bootstrap call) or queues it until the initialize
// response arrives.
func (ls *LanguageServer) sendRaw(forceID int64, path, method string, params any, handle func(json.RawMessage, *rpcError)) int64 {
	ls.mu.Lock()
	var id int64
	if forceID != 0 || method == "initialize" {
		id = forceID
	} else {
		ls.nextID++
		id = ls.nextID
	}
	ls.pending[id] = pendingRequest{path: path, method: method, handle: handle}
	initialized := ls.initialized || method == "initialize"
	ls.mu.Unlock()

	body, _ := json.Marshal(rpcMessage{JSONRPC: "2.0", ID: &id, Method: method, Params: marshalParams(params)})
	if initialized {
		ls.writeRaw(body)
	} else {
		ls.mu.Lock()
		ls.outbox = append(ls.outbox, body)
		ls.mu.Unlock()
	}
	return id
}

func marshalParams(params any) json.RawMessage {
	b, _ := json.Marshal(params)
	return b
}

// SendRequest issues a request for path (used only for bookkeeping, not
// sent to the server), returning its assigned id.
func (ls *LanguageServer) SendRequest(path, method string, params any, handle func(result json.RawMessage, rpcErr *rpcError)) int64 {
	return ls.sendRaw(0, path, method, params, func(result json.RawMessage, rpcErr *rpcError) {
		if handle != nil {
			handle(result, rpcErr)
		}
	})
}

// sendNotification sends a notification (no id, no response expected).
func (ls *LanguageServer) sendNotification(method string, params any) {
	body, _ := json.Marshal(rpcMessage{JSONRPC: "2.0", Method: method, Params: marshalParams(params)})
	ls.mu.Lock()
	initialized := ls.initialized
	ls.mu.Unlock()
	if initialized {
		ls.writeRaw(body)
	} else {
		ls.mu.Lock()
		ls.outbox = append(ls.outbox, body)
		ls.mu.Unlock()
	}
}

// SendNotification is the public entry point for notifications (e.g.
// textDocument/didChange).
func (ls *LanguageServer) SendNotification(method string, params any) {
	ls.sendNotification(method, params)
}

// Capabilities returns the negotiated capabilities. Valid only after the
// initialize response has arrived.
func (ls *LanguageServer) Capabilities() Capabilities {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.caps
}

// WaitInitialized polls for the initialize response, for callers (the
// CLI, tests) that need a synchronous handshake instead of reacting to
// it asynchronously. Returns false if timeout elapses first.
func (ls *LanguageServer) WaitInitialized(timeout time.Duration) (Capabilities, bool) {
	deadline := time.Now().Add(timeout)
	for {
		ls.mu.Lock()
		initialized := ls.initialized
		caps := ls.caps
		ls.mu.Unlock()
		if initialized {
			return caps, true
		}
		if time.Now().After(deadline) {
			return Capabilities{}, false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Shutdown sends `shutdown` then `exit` and waits for the process to
// finish, per spec §4.9 lifecycle step 3.
func (ls *LanguageServer) Shutdown() error {
	done := make(chan struct{})
	ls.SendRequest("", "shutdown", nil, func(json.RawMessage, *rpcError) { close(done) })
	<-done
	ls.sendNotification("exit", nil)
	return ls.cmd.Wait()
}

// NewTestLanguageServer builds a LanguageServer with no backing process,
// for exercising dispatch/bookkeeping logic in tests without spawning a
// real language server.
func NewTestLanguageServer() *LanguageServer {
	ls := &LanguageServer{
		pending:              make(map[int64]pendingRequest),
		docs:                 make(map[string]*documentState),
		diagnostics:          make(map[string][]Diagnostic),
		notificationHandlers: make(map[string]func(json.RawMessage)),
		initialized:          true,
		log:                  zap.NewNop().Sugar(),
	}
	ls.notificationHandlers["textDocument/publishDiagnostics"] = ls.handlePublishDiagnostics
	return ls
}

// DispatchForTest feeds a notification directly into the handler table,
// bypassing the process/stdout machinery.
func (ls *LanguageServer) DispatchForTest(method string, params json.RawMessage) {
	ls.mu.Lock()
	h := ls.notificationHandlers[method]
	ls.mu.Unlock()
	if h != nil {
		h(params)
	}
}

func docState(ls *LanguageServer, path string) *documentState {
	ds, ok := ls.docs[path]
	if !ok {
		ds = &documentState{expected: make(map[string]*expectedResponse)}
		ls.docs[path] = ds
	}
	return ds
}

// SetDocumentVersion records the document's current version, bumped on
// every didChange notification; IsResponseExpected compares a tracked
// request's version against this to detect edits that happened while the
// request was in flight.
func (ls *LanguageServer) SetDocumentVersion(path string, version uint64) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	docState(ls, path).version = version
}

// TrackExpected records the pending request id/position/version for method
// on path, so a later response can be checked for staleness.
func (ls *LanguageServer) TrackExpected(path, method string, id int64, pos *position.Position, version uint64) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	docState(ls, path).expected[method] = &expectedResponse{id: id, position: pos, version: version}
}

// DebounceOrSend decides whether a new request for (path, method) should be
// queued behind an in-flight one. If a request is already tracked for this
// method, fire is stashed to run when that request's response arrives, and
// DebounceOrSend returns true (caller must not send now). Otherwise it
// returns false (caller should send immediately).
func (ls *LanguageServer) DebounceOrSend(path, method string, fire func()) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ds := docState(ls, path)
	if existing, ok := ds.expected[method]; ok {
		existing.debounced = fire
		return true
	}
	return false
}

// IsResponseExpected implements spec §4.9's is_response_expected: stale
// (id-mismatched) and superseded (position/version changed) responses are
// rejected; a debounced follow-up queued while this request was in flight
// is re-issued.
func (ls *LanguageServer) IsResponseExpected(path, method string, id int64, currentPos position.Position, currentVersion uint64) bool {
	ls.mu.Lock()
	ds, ok := ls.docs[path]
	if !ok {
		ls.mu.Unlock()
		return true
	}
	entry, ok := ds.expected[method]
	if !ok {
		ls.mu.Unlock()
		return true
	}
	if entry.id != id {
		ls.mu.Unlock()
		return false
	}
	delete(ds.expected, method)
	fire := entry.debounced
	entryPos := entry.position
	entryVersion := entry.version
	ls.mu.Unlock()

	if fire != nil {
		fire()
	}

	if entryVersion != currentVersion {
		return false
	}
	if entryPos != nil && *entryPos != currentPos {
		return false
	}
	return true
}
