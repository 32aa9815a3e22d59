// Package progtest provides utilities for testing subprograms.
//
// The entry point of the utilities is the Test function, which runs a
// Program against any number of test cases. Test cases are constructed with
// ThatGoeval, followed by method calls that add stdin and expectations.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/goeval/goeval/pkg/must"
	"github.com/goeval/goeval/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string

	wantExit   int
	wantStdout output
	wantStderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("text %q", o.content)
}

// ThatGoeval returns a new Case with the given CLI arguments.
func ThatGoeval(args ...string) Case {
	return Case{args: append([]string{"goeval"}, args...)}
}

// WithStdin returns an altered Case that has the given stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark that a Case is expected
// to have no side effects.
func (c Case) DoesNothing() Case { return c }

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.wantExit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.wantStdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write stdout output containing the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.wantStdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.wantStderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write stderr output containing the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.wantStderr = output{content: s, partial: true}
	return c
}

// Test runs the given Program with each of the test cases, and checks the
// expectations they carry.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(p, c.args, c.stdin)
			if exit != c.wantExit {
				t.Errorf("got exit code %v, want %v", exit, c.wantExit)
			}
			checkOutput(t, "stdout", stdout, c.wantStdout)
			checkOutput(t, "stderr", stderr, c.wantStderr)
		})
	}
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.content) {
			t.Errorf("got %v %q, want %v", name, got, want)
		}
	} else if got != want.content {
		t.Errorf("got %v %q, want %v", name, got, want)
	}
}

func run(p prog.Program, args []string, stdin string) (int, string, string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Write stdin in a goroutine, since it may be larger than the pipe
	// buffer.
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	stdoutDone := capture(r1)
	stderrDone := capture(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-stdoutDone, <-stderrDone
}

// Starts reading from r in a goroutine. If the program writes more than the
// pipe buffer can hold, reading after it has returned would deadlock.
func capture(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
