//go:build unix

package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/goeval/goeval/pkg/must"
	"github.com/goeval/goeval/pkg/testutil"
)

// Fixture is a set of fds for driving a program end to end; the test feeds
// fd 0 up front and inspects what the program wrote to fds 1 and 2 after it
// has returned.
type Fixture struct {
	pipes [3]*pipe
}

// Setup sets up a Fixture with all three fds backed by regular pipes. It also
// changes into a temporary directory for the duration of the test.
func Setup(t *testing.T) *Fixture {
	testutil.InTempDir(t)
	f := &Fixture{[3]*pipe{makePipe(), makePipe(), makePipe()}}
	t.Cleanup(f.cleanup)
	return f
}

// SetupInteractive is like Setup, except that fd 0 is backed by a pty pair,
// so that the program believes it is reading from a terminal. Input from
// FeedIn passes through the pty pair; the terminal's output processing
// applies, so the program reads "\r\n" for every "\n" fed.
func SetupInteractive(t *testing.T) *Fixture {
	testutil.InTempDir(t)
	ptmx, tty := must.OK2(pty.Open())
	f := &Fixture{[3]*pipe{{r: ptmx, w: tty}, makePipe(), makePipe()}}
	t.Cleanup(f.cleanup)
	return f
}

// Fds returns the fds to pass to the program.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.pipes[0].r, f.pipes[1].w, f.pipes[2].w}
}

// FeedIn feeds the given input to fd 0 and closes its write side.
func (f *Fixture) FeedIn(content string) {
	p := f.pipes[0]
	p.w.WriteString(content)
	p.w.Close()
	p.wClosed = true
}

// TestOut verifies that the output written to the given fd is exactly
// wantOut.
func (f *Fixture) TestOut(t *testing.T, fd int, wantOut string) {
	t.Helper()
	if out := f.pipes[fd].get(); out != wantOut {
		t.Errorf("got out %q, want %q", out, wantOut)
	}
}

// TestOutSnippet verifies that the output written to the given fd contains
// wantOutSnippet.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantOutSnippet string) {
	t.Helper()
	if out := f.pipes[fd].get(); !strings.Contains(out, wantOutSnippet) {
		t.Errorf("got out %q, want string containing %q", out, wantOutSnippet)
	}
}

type pipe struct {
	r, w             *os.File
	rClosed, wClosed bool
	read             bool
	output           string
}

func makePipe() *pipe {
	r, w := must.Pipe()
	return &pipe{r: r, w: w}
}

// Reads all output from the pipe. The first read closes the program-side fd;
// reading from a pty master whose slave has closed fails with EIO, which is
// treated like EOF.
func (p *pipe) get() string {
	if !p.read {
		if !p.wClosed {
			p.w.Close()
			p.wClosed = true
		}
		b, _ := io.ReadAll(p.r)
		p.r.Close()
		p.rClosed = true
		p.output = string(b)
		p.read = true
	}
	return p.output
}

func (f *Fixture) cleanup() {
	for _, p := range f.pipes {
		if !p.wClosed {
			p.w.Close()
			p.wClosed = true
		}
		if !p.rClosed {
			p.r.Close()
			p.rClosed = true
		}
	}
}
