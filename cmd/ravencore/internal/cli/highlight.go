package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/javanhut/ravencore/color"
	"github.com/javanhut/ravencore/config"
	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/linepool"
	"github.com/javanhut/ravencore/syntax"
	"github.com/javanhut/ravencore/syntax/lang"
	"github.com/spf13/cobra"
)

var highlightThemePath string

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a file to stdout with syntax highlighting",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().StringVar(&highlightThemePath, "theme", "", "path to a TOML theme file (see config.LoadTheme)")
}

func syntaxForPath(path string) *syntax.Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return lang.SQL()
	default:
		return lang.Go()
	}
}

func runHighlight(cmd *cobra.Command, args []string) error {
	path := args[0]

	d := doc.New(doc.KindMultiLine, linepool.New())
	if err := d.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	hl := syntax.NewHighlighter(syntaxForPath(path))
	if highlightThemePath != "" {
		th, err := config.LoadTheme(highlightThemePath)
		if err != nil {
			return fmt.Errorf("loading theme %s: %w", highlightThemePath, err)
		}
		hl.SetTheme(th)
	}
	hl.Update(d, 0, int64(d.LineCount()-1))

	palette := color.NewPalette256()
	out := cmd.OutOrStdout()
	for y := 0; y < d.LineCount(); y++ {
		writeHighlightedLine(out, palette, d.LineGraphemes(int64(y)), hl.Line(int64(y)))
	}
	return nil
}

// writeHighlightedLine prints one line's graphemes, wrapping each
// highlighted span in a 24-bit-color SGR sequence resolved through the
// xterm 256-color palette (so indexed syntax colors render as concrete
// RGB even though the document model never stores RGB itself).
func writeHighlightedLine(w io.Writer, palette color.Palette256, graphemes []string, line syntax.HighlightedLine) {
	fallback := color.RGB8{R: 229, G: 229, B: 229}
	col := 0
	for _, h := range line.Highlights {
		for col < int(h.Start) && col < len(graphemes) {
			fmt.Fprint(w, graphemes[col])
			col++
		}
		rgb := palette.Resolve(h.Fg, fallback)
		fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", rgb.R, rgb.G, rgb.B)
		for col < int(h.End) && col < len(graphemes) {
			fmt.Fprint(w, graphemes[col])
			col++
		}
		fmt.Fprint(w, "\x1b[0m")
	}
	for col < len(graphemes) {
		fmt.Fprint(w, graphemes[col])
		col++
	}
	fmt.Fprintln(w)
}
