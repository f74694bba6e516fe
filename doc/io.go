// Load/Save/Drain: spec §3 lifecycle and §6 file format.
package doc

import (
	"os"
	"strings"
)

// Load reads path into the document, detecting its line ending and
// replacing all current content. Matches spec §6: "raw text, line endings
// detected on load."
func (d *Doc) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d.loadString(string(data))
	d.path = path
	d.saved = true
	return nil
}

// LoadString replaces the document's content from an in-memory string,
// useful for tests and for documents that aren't backed by a file (e.g.
// terminal output buffers).
func (d *Doc) LoadString(text string) {
	d.loadString(text)
	d.saved = true
}

func (d *Doc) loadString(text string) {
	ending := LineEndingLf
	if strings.Contains(text, "\r\n") {
		ending = LineEndingCrLf
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	for _, l := range d.lines {
		d.pool.Put(l)
	}
	d.lines = d.lines[:0]

	parts := strings.Split(normalized, "\n")
	for _, part := range parts {
		d.lines = append(d.lines, d.pool.GetWith(splitGraphemes(part)))
	}
	if len(d.lines) == 0 {
		d.lines = append(d.lines, d.pool.Get())
	}

	d.ending = ending
	d.cursors = d.cursors[:0]
	d.cursors = append(d.cursors, Cursor{})
	d.undoHist.Clear()
	d.redoHist.Clear()
	d.version++
	d.highestUnhighlighted = 0
	d.dirtyTokenLines = nil
	d.tokenizeDirty = true
	for y := range d.lines {
		d.markDirty(int64(y))
	}
}

// Save writes the document to its current path (or to overridePath, if
// given), joining lines with the detected line ending and trimming
// trailing whitespace from each line first, per spec §6.
func (d *Doc) Save(overridePath ...string) error {
	path := d.path
	if len(overridePath) > 0 && overridePath[0] != "" {
		path = overridePath[0]
	}
	if path == "" {
		return os.ErrInvalid
	}

	ending := d.ending.String()
	var b strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			b.WriteString(ending)
		}
		b.WriteString(strings.TrimRight(l.String(), " \t"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return err
	}
	d.path = path
	d.saved = true
	return nil
}

// Drain returns every line to the LinePool, leaving the Doc empty of
// backing storage. Callers must not use the Doc afterward except to call
// LoadString/Load again.
func (d *Doc) Drain() {
	for _, l := range d.lines {
		d.pool.Put(l)
	}
	d.lines = nil
}
