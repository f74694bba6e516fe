package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/javanhut/ravencore/color"
)

// Emulator glues a Grid and a Parser together, applying each parsed Event
// to grid state and providing PTY-bound key input mapping. Grounded on
// the teacher's tab.Pane, which owned a Terminal (parser+grid combined)
// plus a PtySession; here the parser and grid are independent types per
// spec §4.10, and Emulator is the layer that ties them to a byte stream.
type Emulator struct {
	Grid   *Grid
	parser *Parser

	currentFg, currentBg color.Color
	currentFlags         CellFlags

	cursorVisible bool
	appCursorKeys bool
	originMode    bool
}

// NewEmulator returns an Emulator over a fresh w x h Grid.
func NewEmulator(w, h int) *Emulator {
	return &Emulator{
		Grid:          NewGrid(w, h),
		parser:        NewParser(),
		currentFg:     color.Default(),
		currentBg:     color.Default(),
		cursorVisible: true,
	}
}

// Feed parses data and applies every resulting event to the grid, in
// order. Splitting the same byte stream across multiple Feed calls at
// any boundary produces the same grid state as one call with the whole
// stream, since both the parser's and the emulator's state carry over.
func (e *Emulator) Feed(data []byte) {
	for _, ev := range e.parser.Feed(data) {
		e.apply(ev)
	}
}

func (e *Emulator) apply(ev Event) {
	switch ev.Kind {
	case EventText:
		r, _ := utf8.DecodeRuneInString(ev.Text)
		e.Grid.WriteGrapheme(ev.Text, r, e.currentFg, e.currentBg, e.currentFlags)
	case EventBS:
		e.Grid.Backspace()
	case EventHT:
		e.Grid.Tab()
	case EventCR:
		e.Grid.CarriageReturn()
	case EventLF:
		e.Grid.Newline()
	case EventRI:
		e.Grid.ReverseIndex()
	case EventPrivateMode:
		e.applyPrivateMode(ev)
	case EventSGR:
		e.applySGR(ev.Params)
	case EventCursorSet:
		e.applyCursorSet(ev)
	case EventCursorMove:
		e.applyCursorMove(ev)
	case EventErase:
		e.applyErase(ev)
	case EventLines:
		e.applyLines(ev)
	case EventScroll:
		e.applyScroll(ev)
	case EventChars:
		e.applyChars(ev)
	case EventSetScrollRegion:
		e.applyScrollRegion(ev)
	case EventDeviceQuery, EventOSC:
		// Device-status/terminal-id queries and OSC window-title/color
		// reports are surfaced for a caller to answer or record, not acted
		// on by the grid itself; callers observe them via Parser.Feed's
		// return value if they need the raw event, per spec §7's policy of
		// silently ignoring unsupported control traffic rather than erroring.
	}
}

// applySGR mirrors the teacher's executeSGR: a flat switch over SGR
// parameters mutating the current write attributes, rather than the
// parser pre-decoding colors.
func (e *Emulator) applySGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			e.currentFg = color.Default()
			e.currentBg = color.Default()
			e.currentFlags = 0
		case p == 1:
			e.currentFlags |= FlagBold
		case p == 2:
			e.currentFlags |= FlagDim
		case p == 3:
			e.currentFlags |= FlagItalic
		case p == 4:
			e.currentFlags |= FlagUnderline
		case p == 7:
			e.currentFlags |= FlagInverse
		case p == 8:
			e.currentFlags |= FlagHidden
		case p == 9:
			e.currentFlags |= FlagStrikethrough
		case p == 22:
			e.currentFlags &^= FlagBold
			e.currentFlags &^= FlagDim
		case p == 23:
			e.currentFlags &^= FlagItalic
		case p == 24:
			e.currentFlags &^= FlagUnderline
		case p == 27:
			e.currentFlags &^= FlagInverse
		case p == 28:
			e.currentFlags &^= FlagHidden
		case p == 29:
			e.currentFlags &^= FlagStrikethrough
		case p >= 30 && p <= 37:
			e.currentFg = color.Indexed(uint8(p - 30))
		case p == 38:
			if i+1 < len(params) {
				if params[i+1] == 5 && i+2 < len(params) {
					e.currentFg = color.Indexed(uint8(params[i+2]))
					i += 2
				} else if params[i+1] == 2 && i+4 < len(params) {
					e.currentFg = color.RGB(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
					i += 4
				}
			}
		case p == 39:
			e.currentFg = color.Default()
		case p >= 40 && p <= 47:
			e.currentBg = color.Indexed(uint8(p - 40))
		case p == 48:
			if i+1 < len(params) {
				if params[i+1] == 5 && i+2 < len(params) {
					e.currentBg = color.Indexed(uint8(params[i+2]))
					i += 2
				} else if params[i+1] == 2 && i+4 < len(params) {
					e.currentBg = color.RGB(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
					i += 4
				}
			}
		case p == 49:
			e.currentBg = color.Default()
		case p >= 90 && p <= 97:
			e.currentFg = color.Indexed(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			e.currentBg = color.Indexed(uint8(p - 100 + 8))
		}
	}
}

func (e *Emulator) applyPrivateMode(ev Event) {
	for _, p := range ev.Params {
		switch p {
		case 1:
			e.appCursorKeys = ev.Set
		case 6:
			e.originMode = ev.Set
		case 25:
			e.cursorVisible = ev.Set
		case 1049, 1047, 47:
			if ev.Set {
				e.Grid.EnterAltBuffer()
			} else {
				e.Grid.LeaveAltBuffer()
			}
		case 1000, 1002, 1003, 1006:
			// Mouse reporting modes: tracked by a caller that owns input
			// routing, not by the grid. Left unhandled here deliberately.
		}
	}
}

// CursorVisible reports whether DECTCEM last requested the cursor be
// shown.
func (e *Emulator) CursorVisible() bool { return e.cursorVisible }

func (e *Emulator) applyCursorSet(ev Event) {
	x, y := e.Grid.Cursor()
	switch ev.Letter {
	case 'G':
		e.Grid.SetCursor(int64(paramOr(ev.Params, 0, 1)-1), y)
	case 'd':
		e.Grid.SetCursor(x, int64(paramOr(ev.Params, 0, 1)-1))
	case 'H', 'f':
		row := int64(paramOr(ev.Params, 0, 1) - 1)
		col := int64(paramOr(ev.Params, 1, 1) - 1)
		e.Grid.SetCursor(col, row)
	}
}

func (e *Emulator) applyCursorMove(ev Event) {
	n := int64(paramOr(ev.Params, 0, 1))
	switch ev.Letter {
	case 'A':
		e.Grid.MoveCursor(0, -n)
	case 'B':
		e.Grid.MoveCursor(0, n)
	case 'C':
		e.Grid.MoveCursor(n, 0)
	case 'D':
		e.Grid.MoveCursor(-n, 0)
	case 'E':
		e.Grid.MoveCursor(0, n)
		e.Grid.CarriageReturn()
	case 'F':
		e.Grid.MoveCursor(0, -n)
		e.Grid.CarriageReturn()
	}
}

func (e *Emulator) applyErase(ev Event) {
	mode := paramOr(ev.Params, 0, 0)
	switch ev.Letter {
	case 'J':
		e.Grid.EraseDisplay(mode)
	case 'K':
		x, _ := e.Grid.Cursor()
		switch mode {
		case 0:
			e.Grid.ClearLine(x, int64(e.Grid.W))
		case 1:
			e.Grid.ClearLine(0, x+1)
		case 2:
			e.Grid.ClearLine(0, int64(e.Grid.W))
		}
	}
}

func (e *Emulator) applyLines(ev Event) {
	n := paramOr(ev.Params, 0, 1)
	switch ev.Letter {
	case 'L':
		e.Grid.InsertLines(n)
	case 'M':
		e.Grid.DeleteLines(n)
	}
}

func (e *Emulator) applyScroll(ev Event) {
	n := paramOr(ev.Params, 0, 1)
	switch ev.Letter {
	case 'S':
		e.Grid.ScrollUp(n)
	case 'T':
		e.Grid.ScrollDown(n)
	}
}

func (e *Emulator) applyChars(ev Event) {
	n := paramOr(ev.Params, 0, 1)
	switch ev.Letter {
	case 'X':
		e.Grid.EraseChars(n)
	case 'P':
		e.Grid.DeleteChars(n)
	case '@':
		e.Grid.InsertChars(n)
	}
}

func (e *Emulator) applyScrollRegion(ev Event) {
	top := paramOr(ev.Params, 0, 1) - 1
	bottom := paramOr(ev.Params, 1, e.Grid.H) - 1
	e.Grid.SetScrollRegion(top, bottom)
}

// Resize propagates a size change to the grid and resets the scroll
// region, per spec §4.10.
func (e *Emulator) Resize(w, h int) {
	e.Grid.Resize(w, h)
}

// KeyInput is one logical key event from the UI layer, independent of
// any toolkit's own key-event type.
type KeyInput struct {
	Rune  rune
	Name  string // "Up", "Down", "Left", "Right", "Home", "End", "Enter", "Backspace", "Tab", "Escape", ""
	Ctrl  bool
	Alt   bool
	Shift bool
}

// cursorKeyLetters maps a KeyInput.Name to its xterm final letter, for
// both the unmodified prefix+letter form and the modified CSI 1;n form.
var cursorKeyLetters = map[string]string{
	"Up":    "A",
	"Down":  "B",
	"Right": "C",
	"Left":  "D",
	"Home":  "H",
	"End":   "F",
}

// modifierCode computes xterm's CSI 1;n modifier parameter: 1 plus 1 for
// Shift, 2 for Alt, 4 for Ctrl (bitwise-additive), so unmodified is 1 and
// e.g. Ctrl+Shift is 1+1+4=6.
func modifierCode(k KeyInput) int {
	code := 1
	if k.Shift {
		code += 1
	}
	if k.Alt {
		code += 2
	}
	if k.Ctrl {
		code += 4
	}
	return code
}

// EncodeKey maps a KeyInput to the byte sequence to write to the PTY,
// following xterm's cursor-key convention (CSI prefix normally, SS3
// prefix once application cursor-key mode is set, CSI 1;n for modified
// keys), per spec §6's external-interface contract for terminal input.
func (e *Emulator) EncodeKey(k KeyInput) []byte {
	if k.Ctrl && k.Rune != 0 {
		r := k.Rune
		if r >= 'a' && r <= 'z' {
			return []byte{byte(r - 'a' + 1)}
		}
		if r >= 'A' && r <= 'Z' {
			return []byte{byte(r - 'A' + 1)}
		}
	}
	prefix := "\x1b["
	if e.appCursorKeys {
		prefix = "\x1bO"
	}
	if letter, ok := cursorKeyLetters[k.Name]; ok {
		if mod := modifierCode(k); mod > 1 {
			// xterm always reports modified cursor/function keys in CSI
			// 1;n form, even under application cursor-key mode, since the
			// SS3 (prefix "\x1bO") encoding has no room for a modifier.
			return []byte(fmt.Sprintf("\x1b[1;%d%s", mod, letter))
		}
		return []byte(prefix + letter)
	}
	switch k.Name {
	case "Enter":
		return []byte("\r")
	case "Backspace":
		return []byte{0x7f}
	case "Tab":
		return []byte("\t")
	case "Escape":
		return []byte{0x1b}
	}
	if k.Alt && k.Rune != 0 {
		return append([]byte{0x1b}, []byte(string(k.Rune))...)
	}
	if k.Rune != 0 {
		return []byte(string(k.Rune))
	}
	return nil
}
