package lang

import "github.com/javanhut/ravencore/syntax"

// a representative subset of the standard's reserved words; the full list
// runs to several hundred entries and isn't worth carrying verbatim here.
var sqlKeywords = []string{
	"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE", "SET",
	"DELETE", "CREATE", "TABLE", "DROP", "ALTER", "INDEX", "VIEW", "JOIN",
	"INNER", "LEFT", "RIGHT", "OUTER", "ON", "GROUP", "BY", "ORDER", "HAVING",
	"LIMIT", "OFFSET", "AND", "OR", "NOT", "NULL", "IS", "IN", "AS", "DISTINCT",
	"UNION", "ALL", "CASE", "WHEN", "THEN", "ELSE", "END", "PRIMARY", "KEY",
	"FOREIGN", "REFERENCES", "DEFAULT", "CHECK", "CONSTRAINT",
}

// SQL returns the built-in SQL language definition: "--" line comments,
// "/* */" block comments, '...' string literals, "..." quoted names, and
// number literals.
func SQL() *syntax.Syntax {
	s := syntax.NewSyntax(sqlKeywords)
	s.HasIdentifiers = true
	s.Ranges = []syntax.SyntaxRange{
		{Start: compile("%-%-"), SingleLine: true, Kind: syntax.KindComment},
		{Start: compile("/%*"), End: compile("%*/"), Kind: syntax.KindComment},
		{Start: compile("'"), End: compile("'"), Kind: syntax.KindString},
		{Start: compile(`"`), End: compile(`"`), Kind: syntax.KindIdentifier},
	}
	s.Tokens = []syntax.SyntaxToken{
		{Pattern: compile("%d+%.%d+"), Kind: syntax.KindNumber},
		{Pattern: compile("%d+"), Kind: syntax.KindNumber},
	}
	return s
}
