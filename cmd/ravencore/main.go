// Command ravencore is a CLI harness over the ravencore core library:
// it opens and highlights documents, spawns and inspects language
// servers, and runs a debuggable terminal-pane session. It exists to
// exercise doc/syntax/lsp/term/pty/workspace/inspect end to end without
// any platform graphics — the GLFW/OpenGL window and render loop the
// teacher's src/main.go drives are an explicit non-goal of this module.
package main

import "github.com/javanhut/ravencore/cmd/ravencore/internal/cli"

func main() {
	cli.Execute()
}
