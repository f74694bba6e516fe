// Package palette models the document-facing contract a command-palette
// mode must satisfy, per spec §9's re-architecture guidance: "dynamic
// dispatch for command-palette modes is expressed as a tagged variant
// with a vtable of function pointers (on_open, on_submit,
// on_update_results, on_backspace, ...); no class hierarchy required."
// Per spec's Non-goals, only this contract is in scope — result-list
// rendering, the widget tree, and concrete palette modes (file-open,
// command-run, symbol-search, ...) are not.
package palette

// Result is one entry a mode's on_update_results produced for the
// current query.
type Result struct {
	Label    string
	Detail   string
	Tag      any // mode-defined payload resolved on submit
}

// Mode is the vtable a tagged command-palette variant dispatches
// through, a struct of function fields rather than an interface or
// class hierarchy, matching the spec's own wording directly. Any field
// left nil is simply not called.
type Mode struct {
	Name string

	OnOpen          func()
	OnSubmit        func(query string, selected Result)
	OnUpdateResults func(query string) []Result
	OnBackspace     func(query string) (next string, handled bool)
	OnClose         func()
}

// Palette holds the active Mode and its current query/results,
// dispatching every input event through the Mode's vtable.
type Palette struct {
	mode    *Mode
	query   string
	results []Result
}

// Open activates mode, clears the query, and calls its OnOpen.
func (p *Palette) Open(mode *Mode) {
	p.mode = mode
	p.query = ""
	p.results = nil
	if mode != nil && mode.OnOpen != nil {
		mode.OnOpen()
	}
}

// Close calls the active mode's OnClose, if any, and deactivates it.
func (p *Palette) Close() {
	if p.mode != nil && p.mode.OnClose != nil {
		p.mode.OnClose()
	}
	p.mode = nil
	p.query = ""
	p.results = nil
}

// Active reports whether a mode is currently open.
func (p *Palette) Active() bool { return p.mode != nil }

// ModeName returns the active mode's name, or "" if none is open.
func (p *Palette) ModeName() string {
	if p.mode == nil {
		return ""
	}
	return p.mode.Name
}

// Type appends r to the query and refreshes results via
// OnUpdateResults.
func (p *Palette) Type(r rune) {
	if p.mode == nil {
		return
	}
	p.query += string(r)
	p.refresh()
}

// Backspace gives the active mode a chance to handle backspace itself
// (OnBackspace); if it declines or is unset, one rune is dropped from
// the query and results are refreshed either way.
func (p *Palette) Backspace() {
	if p.mode == nil {
		return
	}
	if p.mode.OnBackspace != nil {
		if next, handled := p.mode.OnBackspace(p.query); handled {
			p.query = next
			p.refresh()
			return
		}
	}
	if len(p.query) > 0 {
		r := []rune(p.query)
		p.query = string(r[:len(r)-1])
	}
	p.refresh()
}

func (p *Palette) refresh() {
	if p.mode.OnUpdateResults != nil {
		p.results = p.mode.OnUpdateResults(p.query)
	}
}

// Results returns the current result set.
func (p *Palette) Results() []Result { return p.results }

// Query returns the current query string.
func (p *Palette) Query() string { return p.query }

// Submit calls the active mode's OnSubmit with the given selection, then
// closes the palette.
func (p *Palette) Submit(selected Result) {
	if p.mode == nil {
		return
	}
	if p.mode.OnSubmit != nil {
		p.mode.OnSubmit(p.query, selected)
	}
	p.Close()
}
