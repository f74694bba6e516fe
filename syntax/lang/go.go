// Package lang ships a handful of built-in Syntax definitions, one builder
// function per language, grounded on aretext's per-language builder style
// (syntax/languages/sql.go: one function per construct, composed into a
// single definition) adapted from aretext's combinator parser.Func pipeline
// to ravencore's Syntax/SyntaxRange/SyntaxToken + pattern.Pattern model.
package lang

import (
	"github.com/javanhut/ravencore/pattern"
	"github.com/javanhut/ravencore/syntax"
)

func compile(src string) *pattern.Pattern {
	p, err := pattern.Compile(src)
	if err != nil {
		panic("lang: invalid built-in pattern " + src + ": " + err.Error())
	}
	return p
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}

// Go returns the built-in Go language definition: line comments, block
// comments, interpreted and raw string literals, and number literals.
func Go() *syntax.Syntax {
	s := syntax.NewSyntax(goKeywords)
	s.HasIdentifiers = true
	s.Ranges = []syntax.SyntaxRange{
		{Start: compile("//"), SingleLine: true, Kind: syntax.KindComment},
		{Start: compile("/%*"), End: compile("%*/"), Kind: syntax.KindComment},
		{Start: compile(`"`), End: compile(`"`), Escape: '\\', HasEsc: true, Kind: syntax.KindString},
		{Start: compile("`"), End: compile("`"), Kind: syntax.KindString},
	}
	s.Tokens = []syntax.SyntaxToken{
		{Pattern: compile("%d+%.%d+"), Kind: syntax.KindNumber},
		{Pattern: compile("%d+"), Kind: syntax.KindNumber},
	}
	return s
}
