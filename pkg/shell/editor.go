package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/goeval/goeval/pkg/strutil"
)

// editor is the interface the session loop needs from a line editor. It is
// implemented by edit.Editor and by minEditor.
type editor interface {
	ReadCode() (string, error)
}

// minEditor reads lines with no editing support. It is used when stdin is
// not a terminal, or when the line editor has been disabled explicitly.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in io.Reader, out io.Writer) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

// ReadCode prompts for and reads one line. Programs driving the shell over a
// pipe can encode a multi-line unit in a single line by using U+2028 as the
// line separator.
func (ed *minEditor) ReadCode() (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.ReplaceAll(line, "\u2028", "\n")
	return strutil.ChopLineEnding(line), nil
}
