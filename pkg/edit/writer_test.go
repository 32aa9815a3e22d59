package edit

import (
	"os"
	"testing"

	"github.com/goeval/goeval/pkg/must"
	"github.com/goeval/goeval/pkg/ui"
)

func TestWriter(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	wr := writer{out: w}

	// First draw starts on the current line.
	wr.draw([]ui.Text{ui.T("ab")}, point{0, 2})
	checkWritten(t, r, "\r\033[J\033[mab\r\033[2C")

	// Multiple rows are joined with explicit CRLF, and the cursor moves back
	// up to the dot.
	wr.draw([]ui.Text{ui.T("ab"), ui.T("cd")}, point{0, 1})
	checkWritten(t, r, "\r\033[J\033[mab\r\n\033[mcd\r\033[1A\033[1C")

	// The next draw first moves from the dot row back to the first row.
	wr.draw([]ui.Text{ui.T("x"), ui.T("y")}, point{1, 1})
	checkWritten(t, r, "\r\033[J\033[mx\r\n\033[my\r\033[1C")

	// finish moves below the drawn rows onto a fresh line.
	wr.finish()
	checkWritten(t, r, "\r\n")
}

func TestWriter_FinishBelowDot(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	wr := writer{out: w}

	wr.draw([]ui.Text{ui.T("a"), ui.T("b"), ui.T("c")}, point{0, 1})
	checkWritten(t, r, "\r\033[J\033[ma\r\n\033[mb\r\n\033[mc\r\033[2A\033[1C")
	wr.finish()
	checkWritten(t, r, "\033[2B\r\n")
}

func checkWritten(t *testing.T, r *os.File, want string) {
	t.Helper()
	buf := make([]byte, 1024)
	n := must.OK1(r.Read(buf))
	if got := string(buf[:n]); got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
}
