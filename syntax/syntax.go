// Package syntax implements incremental syntax highlighting over a
// document's lines, generalized from the teacher's ANSI/SGR scan loop
// (src/parser/parser.go: a typed state enum plus a flat per-byte scan) to a
// pattern-rule scan over graphemes, and from aretext's syntax/languages
// combinator style for the shipped language packs (syntax/lang).
package syntax

import (
	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/pattern"
)

// TokenKind classifies a highlighted span for theming.
type TokenKind int

const (
	KindNormal TokenKind = iota
	KindKeyword
	KindIdentifier
	KindString
	KindComment
	KindNumber
	KindSymbol
)

// SyntaxRange is a multi-line construct (block comment, string literal)
// bounded by a start and end Pattern, with an optional escape grapheme that
// suppresses a match on the following grapheme.
type SyntaxRange struct {
	Start  *pattern.Pattern
	End    *pattern.Pattern
	Escape rune
	HasEsc bool
	Kind   TokenKind
	// SingleLine ranges (e.g. "//" line comments) always close at end of
	// line rather than propagating an UnfinishedRange to the next line; End
	// is unused (may be nil) for these.
	SingleLine bool
}

// SyntaxToken is a single-line construct (a number literal, an operator)
// matched by one Pattern.
type SyntaxToken struct {
	Pattern *pattern.Pattern
	Kind    TokenKind
}

// Syntax is a language definition: a keyword set, an ordered list of
// multi-line ranges (tried first, in order), and an ordered list of
// single-line tokens (tried after identifier tokenization).
// HasIdentifiers colors bare identifiers KindIdentifier instead of
// KindNormal.
type Syntax struct {
	Keywords       map[string]bool
	Ranges         []SyntaxRange
	Tokens         []SyntaxToken
	HasIdentifiers bool
}

// NewSyntax builds a Syntax from a keyword list.
func NewSyntax(keywords []string) *Syntax {
	s := &Syntax{Keywords: make(map[string]bool, len(keywords))}
	for _, k := range keywords {
		s.Keywords[k] = true
	}
	return s
}

// Highlight is one contiguous span of uniform attributes within a line,
// given as grapheme offsets [Start, End).
type Highlight struct {
	Start int64
	End   int64
	Fg    color.Color
	Bg    color.Color
	Kind  TokenKind
}

// HighlightedLine is one line's highlight output. UnfinishedRange, when
// non-nil, names the index into Syntax.Ranges whose end pattern had not yet
// matched by the end of this line; the next line continues matching that
// range's end from column 0.
type HighlightedLine struct {
	Highlights      []Highlight
	UnfinishedRange *int
}

// push appends a highlight, coalescing with the previous one if it shares
// the same Fg/Bg/Kind and is contiguous.
func (hl *HighlightedLine) push(h Highlight) {
	if n := len(hl.Highlights); n > 0 {
		last := &hl.Highlights[n-1]
		if last.End == h.Start && last.Fg == h.Fg && last.Bg == h.Bg && last.Kind == h.Kind {
			last.End = h.End
			return
		}
	}
	hl.Highlights = append(hl.Highlights, h)
}

// themeColor resolves a TokenKind's fg/bg against th. NewHighlighter starts
// from color.DefaultTheme(), so a Highlighter that never calls SetTheme
// paints with that fixed indexed palette.
func themeColor(th color.Theme, k TokenKind) (color.Color, color.Color) {
	switch k {
	case KindKeyword:
		return th.Keyword, th.Background
	case KindString:
		return th.String, th.Background
	case KindComment:
		return th.Comment, th.Background
	case KindNumber:
		return th.Number, th.Background
	case KindIdentifier:
		return th.Identifier, th.Background
	case KindSymbol:
		return th.Symbol, th.Background
	default:
		return th.Foreground, th.Background
	}
}
