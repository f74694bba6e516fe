// Package registry resolves stable document handles to the documents
// they name, per spec §9's re-architecture guidance: "model documents by
// stable integer/uuid handles resolved through a central registry;
// widgets hold handles, never owning references" — avoiding the cyclic
// UI-widget-tree/document references the spec calls out as a design
// hazard to route around.
//
// Grounded on the teacher's tab.TabManager (src/tab/tab.go), which
// tracks a collection of panes behind a mutex and hands out IDs rather
// than letting callers hold pane pointers directly; generalized from
// TabManager's incrementing int IDs to uuid-based DocId per
// SPEC_FULL.md's google/uuid wiring.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/javanhut/ravencore/doc"
)

// DocId is a stable handle to a registered document. The zero value is
// never a valid handle.
type DocId uuid.UUID

// String renders a DocId in standard UUID form.
func (id DocId) String() string { return uuid.UUID(id).String() }

// Registry resolves DocIds to documents. Safe for concurrent use, since
// LSP callbacks, PTY readers, and UI event handlers all resolve handles
// from their own goroutines.
type Registry struct {
	mu   sync.RWMutex
	docs map[DocId]*doc.Doc
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{docs: make(map[DocId]*doc.Doc)}
}

// Register mints a fresh DocId for d and returns it.
func (r *Registry) Register(d *doc.Doc) DocId {
	id := DocId(uuid.New())
	r.mu.Lock()
	r.docs[id] = d
	r.mu.Unlock()
	return id
}

// Resolve looks up the document behind id.
func (r *Registry) Resolve(id DocId) (*doc.Doc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	return d, ok
}

// Forget removes id from the registry. Resolving it afterward returns
// ok=false; existing holders of the DocId value are unaffected beyond
// that, since a DocId is a handle, not a reference.
func (r *Registry) Forget(id DocId) {
	r.mu.Lock()
	delete(r.docs, id)
	r.mu.Unlock()
}

// Ids returns every currently-registered DocId, in no particular order.
func (r *Registry) Ids() []DocId {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]DocId, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	return ids
}

// Len reports how many documents are currently registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
