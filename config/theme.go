package config

import (
	"github.com/BurntSushi/toml"
	"github.com/javanhut/ravencore/color"
)

// colorSpec is one color.Color as written in a theme TOML file: either a
// CSS/X11 name resolved through golang.org/x/image/colornames (e.g.
// "steelblue"), a bare palette index (0-255), or an explicit "#rrggbb".
// Exactly one of Name, Index, Hex should be set; an empty spec resolves
// to color.Default().
type colorSpec struct {
	Name  string `toml:"name"`
	Index *uint8 `toml:"index"`
	Hex   string `toml:"hex"`
}

func (s colorSpec) resolve() color.Color {
	if s.Index != nil {
		return color.Indexed(*s.Index)
	}
	if s.Hex != "" {
		r, g, b := hexToRGB(s.Hex)
		return color.RGB(r, g, b)
	}
	if s.Name != "" {
		if c, ok := color.NamedRGB(s.Name); ok {
			return c
		}
	}
	return color.Default()
}

func hexToRGB(s string) (uint8, uint8, uint8) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	hex := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		default:
			return 0
		}
	}
	r := hex(s[0])<<4 | hex(s[1])
	g := hex(s[2])<<4 | hex(s[3])
	b := hex(s[4])<<4 | hex(s[5])
	return r, g, b
}

// themeFile is a theme's on-disk TOML shape.
type themeFile struct {
	Name       string    `toml:"name"`
	Foreground colorSpec `toml:"foreground"`
	Background colorSpec `toml:"background"`
	Keyword    colorSpec `toml:"keyword"`
	Identifier colorSpec `toml:"identifier"`
	String     colorSpec `toml:"string"`
	Comment    colorSpec `toml:"comment"`
	Number     colorSpec `toml:"number"`
	Symbol     colorSpec `toml:"symbol"`
}

// LoadTheme reads a color.Theme from a TOML file, extending the teacher's
// fixed ThemeOptions/ThemeLabel list (.staging/themes.go): themes now
// carry actual resolvable colors instead
// of being a name/label pair with no color data behind it.
func LoadTheme(path string) (color.Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return color.Theme{}, err
	}
	return color.Theme{
		Name:       tf.Name,
		Foreground: tf.Foreground.resolve(),
		Background: tf.Background.resolve(),
		Keyword:    tf.Keyword.resolve(),
		Identifier: tf.Identifier.resolve(),
		String:     tf.String.resolve(),
		Comment:    tf.Comment.resolve(),
		Number:     tf.Number.resolve(),
		Symbol:     tf.Symbol.resolve(),
	}, nil
}

// ThemeOption describes a built-in theme choice, preserving the teacher's
// config.ThemeOptions/ThemeLabel shape for callers that just want a name
// to show in a picker.
type ThemeOption struct {
	Name  string
	Label string
}

// ThemeOptions lists the editor's built-in themes.
func ThemeOptions() []ThemeOption {
	return []ThemeOption{
		{Name: "raven-blue", Label: "Raven Blue"},
		{Name: "crow-black", Label: "Crow Black"},
		{Name: "magpie-black-white-grey", Label: "Magpie Black/White/Grey"},
		{Name: "catppuccin-mocha", Label: "Catppuccin Mocha"},
	}
}

// ThemeLabel returns the display label for a built-in theme name.
func ThemeLabel(name string) string {
	for _, opt := range ThemeOptions() {
		if opt.Name == name {
			return opt.Label
		}
	}
	if name == "" {
		return "Raven Blue"
	}
	return name
}
