// Goeval is an interactive interpreter for Go snippets. Declarations made in
// earlier snippets stay visible to later ones, giving Go a conversational
// read-eval-print loop.
package main

import (
	"os"

	"github.com/goeval/goeval/pkg/buildinfo"
	"github.com/goeval/goeval/pkg/prog"
	"github.com/goeval/goeval/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
