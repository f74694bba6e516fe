// Package workspace models the editor's multi-pane layout: a binary split
// tree of panes per tab, and a TabManager owning several tabs, per
// SPEC_FULL.md's "multi-pane code editor" framing. Grounded on the
// teacher's tab.TabManager/tab.Tab/tab.SplitNode/tab.Pane
// (.staging/tab.go), generalized from a pane always wrapping a
// parser.Terminal+shell.PtySession pair into a pane that is either a
// terminal (pty.Session + term.Emulator) or an editor view onto a
// registry.DocId — the central split-tree/tab-list bookkeeping (ratios,
// navigation, resize propagation) is kept nearly verbatim since it has
// no terminal-specific content baked into it.
//
// This models layout geometry as pure data (ratios in [0,1], not pixels
// or a widget tree with render methods), so a renderer can consume
// GetPaneLayouts without this package doing any drawing itself.
package workspace

import (
	"sync"

	"github.com/javanhut/ravencore/pty"
	"github.com/javanhut/ravencore/registry"
	"github.com/javanhut/ravencore/term"
)

// MaxTabs and MaxPanes bound runaway split/tab creation, mirroring the
// teacher's fixed caps.
const (
	MaxTabs  = 10
	MaxPanes = 16
)

// SplitDirection is how a SplitNode's children are arranged.
type SplitDirection int

const (
	SplitNone SplitDirection = iota
	SplitVertical
	SplitHorizontal
)

// ResizeDirection is a direction to grow the active pane in, relative to
// its nearest ancestor split.
type ResizeDirection int

const (
	ResizeLeft ResizeDirection = iota
	ResizeRight
	ResizeUp
	ResizeDown
)

const (
	minSplitRatio = 0.1
	maxSplitRatio = 0.9
)

// PaneKind distinguishes an editor pane (view onto a document) from a
// terminal pane (a live shell session).
type PaneKind int

const (
	PaneEditor PaneKind = iota
	PaneTerminal
)

// Pane is one leaf of a tab's split tree: either a terminal session or a
// handle onto a registered document.
type Pane struct {
	id   int
	kind PaneKind

	docID registry.DocId

	term *term.Emulator
	pty  *pty.Session

	exitedMu sync.Mutex
	exited   bool
	readerMu sync.Mutex
}

// NewEditorPane wraps a registered document handle in a pane. Editor
// panes never "exit": HasExited always reports false for them.
func NewEditorPane(id int, docID registry.DocId) *Pane {
	return &Pane{id: id, kind: PaneEditor, docID: docID}
}

// NewTerminalPane spawns a shell in startDir and wraps it with a
// cols x rows term.Emulator, starting the read pump that feeds PTY output
// into the emulator grid.
func NewTerminalPane(id int, cols, rows uint16, startDir string, opts ...pty.Option) (*Pane, error) {
	session, err := pty.NewSession(cols, rows, startDir, opts...)
	if err != nil {
		return nil, err
	}
	pane := &Pane{
		id:   id,
		kind: PaneTerminal,
		term: term.NewEmulator(int(cols), int(rows)),
		pty:  session,
	}
	go pane.readLoop()
	return pane, nil
}

// readLoop feeds PTY output into the emulator until the shell exits.
func (p *Pane) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := p.pty.Read(buf)
		if n > 0 {
			p.readerMu.Lock()
			p.term.Feed(buf[:n])
			p.readerMu.Unlock()
		}
		if err != nil {
			p.exitedMu.Lock()
			p.exited = true
			p.exitedMu.Unlock()
			return
		}
	}
}

// ID returns the pane's id, unique within its tab.
func (p *Pane) ID() int { return p.id }

// Kind reports whether this is an editor or terminal pane.
func (p *Pane) Kind() PaneKind { return p.kind }

// DocID returns the pane's document handle and true, if this is an
// editor pane.
func (p *Pane) DocID() (registry.DocId, bool) {
	if p.kind != PaneEditor {
		return registry.DocId{}, false
	}
	return p.docID, true
}

// Emulator returns the pane's terminal emulator, or nil for an editor
// pane.
func (p *Pane) Emulator() *term.Emulator { return p.term }

// Write sends input to a terminal pane's shell. A no-op for editor panes.
func (p *Pane) Write(data []byte) error {
	if p.kind != PaneTerminal {
		return nil
	}
	_, err := p.pty.Write(data)
	return err
}

// HasExited reports whether a terminal pane's shell has exited. Always
// false for editor panes.
func (p *Pane) HasExited() bool {
	if p.kind != PaneTerminal {
		return false
	}
	p.exitedMu.Lock()
	defer p.exitedMu.Unlock()
	return p.exited || p.pty.HasExited()
}

// Resize resizes a terminal pane's grid and PTY. A no-op for editor
// panes (the viewport resizes independently of the document).
func (p *Pane) Resize(cols, rows uint16) {
	if p.kind != PaneTerminal {
		return
	}
	p.readerMu.Lock()
	defer p.readerMu.Unlock()
	p.term.Resize(int(cols), int(rows))
	p.pty.Resize(cols, rows)
}

// Close releases a terminal pane's shell. A no-op for editor panes (the
// registry, not the pane, owns document lifetime).
func (p *Pane) Close() {
	if p.kind == PaneTerminal {
		p.pty.Close()
	}
}

// CurrentDir returns a terminal pane's shell working directory, used to
// seed a sibling split's starting directory.
func (p *Pane) CurrentDir() string {
	if p.kind != PaneTerminal {
		return ""
	}
	return p.pty.CurrentDir()
}

// Snapshot reads a terminal pane's current grid rows and cursor position
// under the same lock readLoop uses to feed it, for read-only inspection
// (e.g. inspect.Server) without racing the PTY read pump. Returns nil,
// 0, 0 for editor panes.
func (p *Pane) Snapshot() (rows []string, cursorX, cursorY int64) {
	if p.kind != PaneTerminal {
		return nil, 0, 0
	}
	p.readerMu.Lock()
	defer p.readerMu.Unlock()
	n := p.term.Grid.H
	rows = make([]string, n)
	for y := 0; y < n; y++ {
		rows[y] = p.term.Grid.ActiveRowText(y)
	}
	cursorX, cursorY = p.term.Grid.Cursor()
	return rows, cursorX, cursorY
}

// SplitNode is one node of a tab's binary split tree: either a leaf
// (Pane set) or a container with exactly the children it was split into.
type SplitNode struct {
	Pane *Pane

	SplitDir SplitDirection
	Children []*SplitNode
	Ratio    float64

	Parent *SplitNode
}

// IsLeaf reports whether this node holds a pane directly.
func (n *SplitNode) IsLeaf() bool { return n.Pane != nil }

// PaneLayout is one pane's normalized [0,1] rectangle within its tab,
// for a renderer to map onto actual pixels.
type PaneLayout struct {
	Pane   *Pane
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Tab is one tab's split tree plus the active-pane cursor within it.
type Tab struct {
	id         int
	root       *SplitNode
	activeNode *SplitNode
	nextPaneID int
	cols, rows uint16
	mu         sync.Mutex
}

// NewTerminalTab creates a tab whose first (and initially only) pane is a
// terminal session.
func NewTerminalTab(id int, cols, rows uint16, startDir string, opts ...pty.Option) (*Tab, error) {
	pane, err := NewTerminalPane(1, cols, rows, startDir, opts...)
	if err != nil {
		return nil, err
	}
	return newTab(id, cols, rows, pane), nil
}

// NewEditorTab creates a tab whose first pane is an editor view onto
// docID.
func NewEditorTab(id int, cols, rows uint16, docID registry.DocId) *Tab {
	return newTab(id, cols, rows, NewEditorPane(1, docID))
}

func newTab(id int, cols, rows uint16, pane *Pane) *Tab {
	root := &SplitNode{Pane: pane, Ratio: 1.0}
	return &Tab{
		id:         id,
		root:       root,
		activeNode: root,
		nextPaneID: 2,
		cols:       cols,
		rows:       rows,
	}
}

func (t *Tab) countPanes() int { return countPanesInNode(t.root) }

func countPanesInNode(node *SplitNode) int {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return 1
	}
	count := 0
	for _, child := range node.Children {
		count += countPanesInNode(child)
	}
	return count
}

// SplitVertical splits the active pane into a side-by-side pair, putting
// a new terminal pane (started in the active pane's current directory)
// to its right.
func (t *Tab) SplitVertical(opts ...pty.Option) error {
	return t.split(SplitVertical, opts...)
}

// SplitHorizontal splits the active pane into a stacked pair, putting a
// new terminal pane below it.
func (t *Tab) SplitHorizontal(opts ...pty.Option) error {
	return t.split(SplitHorizontal, opts...)
}

func (t *Tab) split(dir SplitDirection, opts ...pty.Option) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.countPanes() >= MaxPanes {
		return nil
	}
	if t.activeNode == nil || !t.activeNode.IsLeaf() {
		return nil
	}

	startDir := t.activeNode.Pane.CurrentDir()
	newPane, err := NewTerminalPane(t.nextPaneID, t.cols/2, t.rows/2, startDir, opts...)
	if err != nil {
		return err
	}
	t.nextPaneID++

	currentPane := t.activeNode.Pane
	t.activeNode.Pane = nil
	t.activeNode.SplitDir = dir
	t.activeNode.Ratio = 0.5

	existingLeaf := &SplitNode{Pane: currentPane, Ratio: 0.5, Parent: t.activeNode}
	newLeaf := &SplitNode{Pane: newPane, Ratio: 0.5, Parent: t.activeNode}
	t.activeNode.Children = []*SplitNode{existingLeaf, newLeaf}

	t.activeNode = newLeaf
	t.resizeNode(t.root, 0, 0, 1.0, 1.0)
	return nil
}

// ClosePane closes the active pane, replacing its parent split with its
// sibling. The last pane in a tab cannot be closed this way — close the
// tab itself instead.
func (t *Tab) ClosePane() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.activeNode == nil || !t.activeNode.IsLeaf() || t.countPanes() <= 1 {
		return
	}
	parent := t.activeNode.Parent
	if parent == nil {
		return
	}

	t.activeNode.Pane.Close()

	var sibling *SplitNode
	for _, child := range parent.Children {
		if child != t.activeNode {
			sibling = child
			break
		}
	}
	if sibling == nil {
		return
	}

	if parent.Parent == nil {
		t.root = sibling
		sibling.Parent = nil
	} else {
		grandparent := parent.Parent
		for i, child := range grandparent.Children {
			if child == parent {
				grandparent.Children[i] = sibling
				sibling.Parent = grandparent
				break
			}
		}
	}

	t.activeNode = firstLeaf(sibling)
	t.resizeNode(t.root, 0, 0, 1.0, 1.0)
}

func firstLeaf(node *SplitNode) *SplitNode {
	if node.IsLeaf() {
		return node
	}
	if len(node.Children) > 0 {
		return firstLeaf(node.Children[0])
	}
	return nil
}

func collectLeaves(node *SplitNode, leaves *[]*SplitNode) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		*leaves = append(*leaves, node)
		return
	}
	for _, child := range node.Children {
		collectLeaves(child, leaves)
	}
}

// NextPane moves the active pane forward through a left-to-right,
// top-to-bottom traversal of the split tree's leaves.
func (t *Tab) NextPane() {
	t.mu.Lock()
	defer t.mu.Unlock()
	var leaves []*SplitNode
	collectLeaves(t.root, &leaves)
	if len(leaves) <= 1 {
		return
	}
	idx := leafIndex(leaves, t.activeNode)
	t.activeNode = leaves[(idx+1)%len(leaves)]
}

// PrevPane moves the active pane backward through the same traversal.
func (t *Tab) PrevPane() {
	t.mu.Lock()
	defer t.mu.Unlock()
	var leaves []*SplitNode
	collectLeaves(t.root, &leaves)
	if len(leaves) <= 1 {
		return
	}
	idx := leafIndex(leaves, t.activeNode)
	t.activeNode = leaves[(idx-1+len(leaves))%len(leaves)]
}

func leafIndex(leaves []*SplitNode, target *SplitNode) int {
	for i, leaf := range leaves {
		if leaf == target {
			return i
		}
	}
	return 0
}

// ResizeActivePane grows the active pane toward direction by delta (an
// absolute ratio adjustment), clamped to [minSplitRatio, maxSplitRatio].
// Reports whether the ratio actually changed.
func (t *Tab) ResizeActivePane(direction ResizeDirection, delta float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.activeNode == nil {
		return false
	}
	if delta < 0 {
		delta = -delta
	}

	var splitDir SplitDirection
	ratioDelta := delta
	switch direction {
	case ResizeLeft:
		splitDir, ratioDelta = SplitVertical, -delta
	case ResizeRight:
		splitDir, ratioDelta = SplitVertical, delta
	case ResizeUp:
		splitDir, ratioDelta = SplitHorizontal, -delta
	case ResizeDown:
		splitDir, ratioDelta = SplitHorizontal, delta
	default:
		return false
	}

	for node := t.activeNode; node.Parent != nil; node = node.Parent {
		parent := node.Parent
		if parent.SplitDir != splitDir || len(parent.Children) != 2 {
			continue
		}
		ratio := parent.Ratio
		if ratio <= 0.0 || ratio >= 1.0 {
			ratio = 0.5
		}
		ratio += ratioDelta
		if ratio < minSplitRatio {
			ratio = minSplitRatio
		}
		if ratio > maxSplitRatio {
			ratio = maxSplitRatio
		}
		if ratio == parent.Ratio {
			return false
		}
		parent.Ratio = ratio
		t.resizeNode(t.root, 0, 0, 1.0, 1.0)
		return true
	}
	return false
}

func (t *Tab) resizeNode(node *SplitNode, x, y, width, height float32) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		cols := uint16(float32(t.cols) * width)
		rows := uint16(float32(t.rows) * height)
		if cols < 1 {
			cols = 1
		}
		if rows < 1 {
			rows = 1
		}
		node.Pane.Resize(cols, rows)
		return
	}

	n := len(node.Children)
	if n == 0 {
		return
	}
	switch node.SplitDir {
	case SplitVertical:
		if n == 2 {
			ratio := splitRatio(node.Ratio)
			firstW := width * ratio
			t.resizeNode(node.Children[0], x, y, firstW, height)
			t.resizeNode(node.Children[1], x+firstW, y, width-firstW, height)
		} else {
			childW := width / float32(n)
			for i, child := range node.Children {
				t.resizeNode(child, x+float32(i)*childW, y, childW, height)
			}
		}
	case SplitHorizontal:
		if n == 2 {
			ratio := splitRatio(node.Ratio)
			firstH := height * ratio
			t.resizeNode(node.Children[0], x, y, width, firstH)
			t.resizeNode(node.Children[1], x, y+firstH, width, height-firstH)
		} else {
			childH := height / float32(n)
			for i, child := range node.Children {
				t.resizeNode(child, x, y+float32(i)*childH, width, childH)
			}
		}
	}
}

func splitRatio(ratio float64) float32 {
	if ratio <= 0.0 || ratio >= 1.0 {
		ratio = 0.5
	}
	return float32(ratio)
}

// GetPaneLayouts returns each pane's normalized rectangle, in split-tree
// traversal order.
func (t *Tab) GetPaneLayouts() []PaneLayout {
	t.mu.Lock()
	defer t.mu.Unlock()
	var layouts []PaneLayout
	collectLayouts(t.root, 0, 0, 1.0, 1.0, &layouts)
	return layouts
}

func collectLayouts(node *SplitNode, x, y, width, height float32, layouts *[]PaneLayout) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		*layouts = append(*layouts, PaneLayout{Pane: node.Pane, X: x, Y: y, Width: width, Height: height})
		return
	}
	n := len(node.Children)
	if n == 0 {
		return
	}
	switch node.SplitDir {
	case SplitVertical:
		if n == 2 {
			ratio := splitRatio(node.Ratio)
			firstW := width * ratio
			collectLayouts(node.Children[0], x, y, firstW, height, layouts)
			collectLayouts(node.Children[1], x+firstW, y, width-firstW, height, layouts)
		} else {
			childW := width / float32(n)
			for i, child := range node.Children {
				collectLayouts(child, x+float32(i)*childW, y, childW, height, layouts)
			}
		}
	case SplitHorizontal:
		if n == 2 {
			ratio := splitRatio(node.Ratio)
			firstH := height * ratio
			collectLayouts(node.Children[0], x, y, width, firstH, layouts)
			collectLayouts(node.Children[1], x, y+firstH, width, height-firstH, layouts)
		} else {
			childH := height / float32(n)
			for i, child := range node.Children {
				collectLayouts(child, x, y+float32(i)*childH, width, childH, layouts)
			}
		}
	}
}

// GetActivePane returns the currently active pane.
func (t *Tab) GetActivePane() *Pane {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeNode != nil && t.activeNode.IsLeaf() {
		return t.activeNode.Pane
	}
	return nil
}

// SetActivePane makes pane the active one, if it belongs to this tab.
func (t *Tab) SetActivePane(pane *Pane) bool {
	if pane == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeNode != nil && t.activeNode.Pane == pane {
		return true
	}
	var target *SplitNode
	findNodeForPane(t.root, pane, &target)
	if target == nil {
		return false
	}
	t.activeNode = target
	return true
}

func findNodeForPane(node *SplitNode, pane *Pane, target **SplitNode) {
	if node == nil || *target != nil {
		return
	}
	if node.IsLeaf() {
		if node.Pane == pane {
			*target = node
		}
		return
	}
	for _, child := range node.Children {
		findNodeForPane(child, pane, target)
		if *target != nil {
			return
		}
	}
}

// Write sends input to the active pane's terminal, if any.
func (t *Tab) Write(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeNode != nil && t.activeNode.IsLeaf() && t.activeNode.Pane != nil {
		return t.activeNode.Pane.Write(data)
	}
	return nil
}

// HasExited reports whether the tab has at least one terminal pane and
// every terminal pane in it has exited (editor panes never count against
// this). A tab holding only editor panes never reports exited.
func (t *Tab) HasExited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	var panes []*Pane
	collectPanes(t.root, &panes)
	terminals := 0
	for _, p := range panes {
		if p.Kind() == PaneTerminal {
			terminals++
		}
	}
	return terminals > 0 && hasExitedNode(t.root)
}

func hasExitedNode(node *SplitNode) bool {
	if node == nil {
		return true
	}
	if node.IsLeaf() {
		return node.Pane.Kind() != PaneTerminal || node.Pane.HasExited()
	}
	for _, child := range node.Children {
		if !hasExitedNode(child) {
			return false
		}
	}
	return true
}

// Resize updates the tab's total size and re-propagates it through the
// split tree.
func (t *Tab) Resize(cols, rows uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
	t.resizeNode(t.root, 0, 0, 1.0, 1.0)
}

// Close closes every pane in the tab.
func (t *Tab) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	closeNode(t.root)
}

func closeNode(node *SplitNode) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		node.Pane.Close()
		return
	}
	for _, child := range node.Children {
		closeNode(child)
	}
}

// ID returns the tab's id.
func (t *Tab) ID() int { return t.id }

// PaneCount returns the number of panes in this tab.
func (t *Tab) PaneCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.countPanes()
}

// GetPanes returns every pane in this tab, in traversal order.
func (t *Tab) GetPanes() []*Pane {
	t.mu.Lock()
	defer t.mu.Unlock()
	var panes []*Pane
	collectPanes(t.root, &panes)
	return panes
}

func collectPanes(node *SplitNode, panes *[]*Pane) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		*panes = append(*panes, node.Pane)
		return
	}
	for _, child := range node.Children {
		collectPanes(child, panes)
	}
}

// ActivePaneIndex returns the active pane's position in a left-to-right,
// top-to-bottom traversal.
func (t *Tab) ActivePaneIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var leaves []*SplitNode
	collectLeaves(t.root, &leaves)
	return leafIndex(leaves, t.activeNode)
}

// ActiveDir returns the active pane's working directory, for seeding a
// new tab or split's starting directory.
func (t *Tab) ActiveDir() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeNode == nil || t.activeNode.Pane == nil {
		return ""
	}
	return t.activeNode.Pane.CurrentDir()
}

// TabManager owns a bounded list of tabs plus which one is active.
type TabManager struct {
	tabs        []*Tab
	activeIndex int
	cols, rows  uint16
	mu          sync.RWMutex
}

// NewTabManager creates a TabManager with one initial terminal tab.
func NewTabManager(cols, rows uint16, opts ...pty.Option) (*TabManager, error) {
	tm := &TabManager{tabs: make([]*Tab, 0, MaxTabs), cols: cols, rows: rows}
	if err := tm.NewTerminalTab(opts...); err != nil {
		return nil, err
	}
	return tm, nil
}

// NewTerminalTab appends a new terminal tab, started in the current
// active tab's working directory.
func (tm *TabManager) NewTerminalTab(opts ...pty.Option) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.tabs) >= MaxTabs {
		return nil
	}
	startDir := ""
	if len(tm.tabs) > 0 && tm.activeIndex >= 0 && tm.activeIndex < len(tm.tabs) {
		startDir = tm.tabs[tm.activeIndex].ActiveDir()
	}
	tab, err := NewTerminalTab(len(tm.tabs)+1, tm.cols, tm.rows, startDir, opts...)
	if err != nil {
		return err
	}
	tm.tabs = append(tm.tabs, tab)
	tm.activeIndex = len(tm.tabs) - 1
	return nil
}

// NewEditorTab appends a new editor tab viewing docID.
func (tm *TabManager) NewEditorTab(docID registry.DocId) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.tabs) >= MaxTabs {
		return
	}
	tab := NewEditorTab(len(tm.tabs)+1, tm.cols, tm.rows, docID)
	tm.tabs = append(tm.tabs, tab)
	tm.activeIndex = len(tm.tabs) - 1
}

func (tm *TabManager) renumberTabs() {
	for i, t := range tm.tabs {
		t.id = i + 1
	}
}

// CloseCurrentTab closes the active tab, keeping at least one tab open.
func (tm *TabManager) CloseCurrentTab() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.tabs) <= 1 {
		return
	}
	tm.tabs[tm.activeIndex].Close()
	tm.tabs = append(tm.tabs[:tm.activeIndex], tm.tabs[tm.activeIndex+1:]...)
	if tm.activeIndex >= len(tm.tabs) {
		tm.activeIndex = len(tm.tabs) - 1
	}
	tm.renumberTabs()
}

// NextTab switches to the next tab, wrapping around.
func (tm *TabManager) NextTab() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.tabs) > 1 {
		tm.activeIndex = (tm.activeIndex + 1) % len(tm.tabs)
	}
}

// PrevTab switches to the previous tab, wrapping around.
func (tm *TabManager) PrevTab() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.tabs) > 1 {
		tm.activeIndex = (tm.activeIndex - 1 + len(tm.tabs)) % len(tm.tabs)
	}
}

// ActiveTab returns the currently active tab, or nil if there are none.
func (tm *TabManager) ActiveTab() *Tab {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	if len(tm.tabs) == 0 {
		return nil
	}
	return tm.tabs[tm.activeIndex]
}

// ResizeAll resizes every tab.
func (tm *TabManager) ResizeAll(cols, rows uint16) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.cols, tm.rows = cols, rows
	for _, tab := range tm.tabs {
		tab.Resize(cols, rows)
	}
}

// CleanupExited closes and drops tabs whose every terminal pane has
// exited. If every tab has exited, each is closed but none is removed
// from the list.
func (tm *TabManager) CleanupExited() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	var active []*Tab
	for _, tab := range tm.tabs {
		if !tab.HasExited() {
			active = append(active, tab)
			continue
		}
		tab.Close()
	}
	if len(active) == 0 {
		return
	}
	tm.tabs = active
	if tm.activeIndex >= len(tm.tabs) {
		tm.activeIndex = len(tm.tabs) - 1
	}
	tm.renumberTabs()
}

// AllExited reports whether every tab has exited.
func (tm *TabManager) AllExited() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	if len(tm.tabs) == 0 {
		return true
	}
	for _, tab := range tm.tabs {
		if !tab.HasExited() {
			return false
		}
	}
	return true
}

// TabCount returns the number of open tabs.
func (tm *TabManager) TabCount() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return len(tm.tabs)
}

// ActiveIndex returns the active tab's index.
func (tm *TabManager) ActiveIndex() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.activeIndex
}

// GetTabs returns a snapshot of the current tab list, for rendering a
// tab bar.
func (tm *TabManager) GetTabs() []*Tab {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	result := make([]*Tab, len(tm.tabs))
	copy(result, tm.tabs)
	return result
}
