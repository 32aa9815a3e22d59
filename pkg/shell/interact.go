package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goeval/goeval/pkg/diag"
	"github.com/goeval/goeval/pkg/edit"
	"github.com/goeval/goeval/pkg/edit/highlight"
	"github.com/goeval/goeval/pkg/eval"
	"github.com/goeval/goeval/pkg/prog"
	"github.com/goeval/goeval/pkg/store"
	"github.com/goeval/goeval/pkg/sys"
	"github.com/goeval/goeval/pkg/ui"
)

// InteractConfig keeps the configuration for an interactive session.
type InteractConfig struct {
	// Read input lines as they are instead of with the line editor.
	DisableReadline bool
	// Write a sentinel byte to stdout after each unit of input.
	IDEMode bool
	// If non-empty, set the engine's optimization level at startup.
	Opt string
}

// Prompts for the first and for continuation lines. They have the same
// width, so that caret runs in diagnostics line up under the echoed input no
// matter which line it started on.
const (
	prompt      = ">> "
	contPrompt  = ".. "
	promptWidth = 3
)

// Sentinel bytes written after each unit in IDE mode.
const (
	unitSucceeded = 0x91
	unitFailed    = 0x92
)

// Interact runs an interactive session: it greets the user, then reads and
// executes units of code until the input is exhausted.
func Interact(fds [3]*os.File, cfg *InteractConfig) error {
	fmt.Fprintln(fds[1], "Welcome to goeval. For help, type :help")

	eg, outs, err := eval.NewEngine()
	if err != nil {
		diag.ShowError(fds[2], err)
		return prog.Exit(2)
	}
	defer eg.Close()
	go forward(fds[1], outs.Stdout)
	go forward(fds[2], outs.Stderr)

	// Run the init file. Errors in it are not fatal and not shown; running
	// :load_config manually repeats it with full output.
	eg.Execute(":load_config")
	if cfg.Opt != "" {
		eg.Execute(":opt " + cfg.Opt)
	}

	histPath, err := historyPath()
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
	}
	hist := store.New()
	if histPath != "" {
		hist, err = store.Load(histPath)
		if err != nil {
			logger.Println("load history:", err)
		}
	}

	ed, err := makeEditor(fds, cfg, hist)
	if err != nil {
		diag.ShowError(fds[2], err)
		return prog.Exit(2)
	}

	s := &session{engine: eg, ideMode: cfg.IDEMode, out: fds[1], err: fds[2]}
	for {
		line, err := ed.ReadCode()
		if err == edit.ErrInterrupted {
			fmt.Fprintln(fds[1], "CTRL-C")
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			break
		}
		hist.Add(line)
		s.execute(line)
	}

	if histPath != "" {
		if err := hist.Save(histPath); err != nil {
			logger.Println("save history:", err)
		}
	}
	return nil
}

func makeEditor(fds [3]*os.File, cfg *InteractConfig, hist *store.Store) (editor, error) {
	if cfg.DisableReadline || !sys.IsATTY(fds[0]) {
		return newMinEditor(fds[0], fds[1]), nil
	}
	hl, err := highlight.NewHighlighter("go", "darcula-dark")
	if err != nil {
		return nil, err
	}
	return edit.New(fds[0], fds[1], edit.Config{
		Prompt:      ui.T(prompt, ui.FgYellow),
		ContPrompt:  ui.T(contPrompt, ui.Dim),
		HintStyling: hl.HintStyling(),
		Highlighter: hl,
		Hinter:      hinter{hist},
		Completer:   completer{hist},
		Validator:   validator{},
		History:     hist,
	}), nil
}

// forward copies lines produced by the engine to w. It runs until the
// engine's channel closes, or until w stops accepting writes.
func forward(w *os.File, lines <-chan string) {
	for line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return
		}
	}
}

// session holds the state of one interactive session. The engine handle is
// called only from the session loop, never concurrently.
type session struct {
	engine  *eval.Engine
	ideMode bool
	out     *os.File
	err     *os.File
}

// execute runs one unit of input and renders the outcome.
func (s *session) execute(line string) {
	res, err := s.engine.Execute(line)
	if err == nil {
		if text, ok := res.Content["text/plain"]; ok {
			fmt.Fprintln(s.out, text)
		}
		if res.Timing != nil {
			s.showTiming(res.Timing)
		}
	} else {
		var compileErr *eval.CompileError
		if errors.As(err, &compileErr) {
			diag.ShowDiagnostics(s.out, compileErr.Diags, promptWidth)
		} else {
			diag.ShowError(s.err, err)
		}
	}
	if s.ideMode {
		sentinel := byte(unitSucceeded)
		if err != nil {
			sentinel = unitFailed
		}
		s.out.Write([]byte{sentinel})
	}
}

func (s *session) showTiming(tm *eval.Timing) {
	fmt.Fprintln(s.out, ui.T(fmt.Sprintf("Took %dms", tm.Total.Milliseconds()), ui.FgBlue))
	for _, ph := range tm.Phases {
		fmt.Fprintln(s.out, ui.T(fmt.Sprintf("  %s: %dms", ph.Name, ph.Duration.Milliseconds()), ui.FgBlue))
	}
}
