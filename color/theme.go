package color

// Theme names the colors the editor paints chrome and syntax kinds with.
// Generalized from the teacher's config.ThemeOptions/ThemeLabel (a fixed
// name/label list with no actual color data behind it) into a real
// resolvable color set, loaded from TOML alongside the language-server
// table in the config package.
type Theme struct {
	Name       string `toml:"name"`
	Foreground Color  `toml:"-"`
	Background Color  `toml:"-"`

	Keyword    Color `toml:"-"`
	Identifier Color `toml:"-"`
	String     Color `toml:"-"`
	Comment    Color `toml:"-"`
	Number     Color `toml:"-"`
	Symbol     Color `toml:"-"`
}

// DefaultTheme mirrors the fixed indexed colors the syntax highlighter
// used before themes existed (now resolved through syntax.themeColor), so
// loading no theme file reproduces the prior fixed behavior.
func DefaultTheme() Theme {
	return Theme{
		Name:       "raven-blue",
		Foreground: Default(),
		Background: Default(),
		Keyword:    Indexed(5),
		Identifier: Indexed(6),
		String:     Indexed(2),
		Comment:    Indexed(8),
		Number:     Indexed(3),
		Symbol:     Indexed(4),
	}
}
