// Package eval implements the execution engine behind the shell: an
// interpreter that evaluates Go snippets incrementally, keeping declarations
// visible to later snippets, and reports results, timing and diagnostics.
package eval

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/goeval/goeval/pkg/errutil"
	"github.com/goeval/goeval/pkg/logutil"
	"github.com/goeval/goeval/pkg/sys"
)

var logger = logutil.GetLogger("[eval] ")

// Engine evaluates snippets and maintains the state persisted between them.
// Methods of Engine must be called from a single goroutine.
type Engine struct {
	interp *interp.Interpreter

	// Write ends of the pipes the interpreter's stdout and stderr are
	// connected to. The read ends feed the output channels.
	stdoutW *io.PipeWriter
	stderrW *io.PipeWriter

	// Names and types of the bindings declared so far, for :vars.
	vars map[string]string

	timing    bool
	optLevel  string
	lastError *CompileError
}

// Outputs holds the engine's output channels. Lines written by evaluated code
// to stdout and stderr arrive here without the trailing newline. Both
// channels are closed after Close.
type Outputs struct {
	Stdout <-chan string
	Stderr <-chan string
}

// NewEngine creates an engine and the channels its output arrives on.
func NewEngine() (*Engine, *Outputs, error) {
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	eg := &Engine{stdoutW: stdoutW, stderrW: stderrW}
	if err := eg.reset(); err != nil {
		stdoutW.Close()
		stderrW.Close()
		return nil, nil, err
	}
	outs := &Outputs{Stdout: forwardLines(stdoutR), Stderr: forwardLines(stderrR)}
	return eg, outs, nil
}

// reset replaces the interpreter with a fresh one, dropping all session
// state. The output plumbing is kept.
func (eg *Engine) reset() error {
	i := interp.New(interp.Options{Stdout: eg.stdoutW, Stderr: eg.stderrW})
	if err := i.Use(stdlib.Symbols); err != nil {
		return fmt.Errorf("cannot load standard library symbols: %v", err)
	}
	eg.interp = i
	eg.vars = make(map[string]string)
	return nil
}

// forwardLines pumps lines read from r into the returned channel, closing it
// when r is exhausted. A trailing partial line is delivered too.
func forwardLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		buf := bufio.NewReader(r)
		for {
			line, err := buf.ReadString('\n')
			if line != "" {
				ch <- strings.TrimSuffix(line, "\n")
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// Execute evaluates one unit of input: a Go snippet, or a command starting
// with ":". A failed evaluation returns either a *CompileError or an ordinary
// error; blank input is a no-op.
func (eg *Engine) Execute(line string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("panic in Execute: %v\n%s", r, sys.DumpStack())
			res, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return &Result{}, nil
	}
	if strings.HasPrefix(trimmed, ":") {
		return eg.runCommand(trimmed)
	}
	return eg.evalCode(line)
}

// Close tears down the output plumbing. Both output channels close after any
// pending lines are delivered.
func (eg *Engine) Close() error {
	return errutil.Multi(eg.stdoutW.Close(), eg.stderrW.Close())
}

// Result is what a successful Execute returns.
type Result struct {
	// Content maps a content kind, such as "text/plain", to a rendering of
	// the snippet's value. Empty when the snippet produced no value.
	Content map[string]string
	// Timing is non-nil when timing has been enabled with :timing.
	Timing *Timing
}

// Timing describes how long the phases of one evaluation took.
type Timing struct {
	Total  time.Duration
	Phases []Phase
}

// Phase is one named phase of an evaluation.
type Phase struct {
	Name     string
	Duration time.Duration
}

func (eg *Engine) evalCode(code string) (*Result, error) {
	start := time.Now()
	p, err := parseSnippet(code)
	if err != nil {
		return nil, eg.compileError(diagnosticsFromParse(err, code))
	}
	parsed := time.Now()
	prog, err := eg.interp.Compile(code)
	if err != nil {
		return nil, eg.compileError(diagnosticsFromMessage(err.Error(), code))
	}
	compiled := time.Now()
	v, err := eg.interp.Execute(prog)
	if err != nil {
		var pan interp.Panic
		if errors.As(err, &pan) {
			return nil, fmt.Errorf("panic: %v", pan.Value)
		}
		return nil, err
	}
	ran := time.Now()

	eg.recordVars(p)
	res := &Result{}
	if p.exprResult() {
		if s, ok := renderValue(v); ok {
			res.Content = map[string]string{"text/plain": s}
		}
	}
	if eg.timing {
		res.Timing = &Timing{
			Total: ran.Sub(start),
			Phases: []Phase{
				{"parse", parsed.Sub(start)},
				{"compile", compiled.Sub(parsed)},
				{"run", ran.Sub(compiled)},
			},
		}
	}
	return res, nil
}
