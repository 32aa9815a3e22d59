// Package edit implements a line editor for terminals.
//
// The editor reads the terminal in raw mode and repaints the edited code
// after every keystroke, optionally with syntax highlighting, an inline
// completion hint after the cursor, and continuation prompts on lines after
// the first. A Validator hook decides whether Enter submits the code or
// starts a new line, which is how multi-line input works.
package edit

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/goeval/goeval/pkg/logutil"
	"github.com/goeval/goeval/pkg/store"
	"github.com/goeval/goeval/pkg/sys"
	"github.com/goeval/goeval/pkg/ui"
)

var logger = logutil.GetLogger("[edit] ")

// ErrInterrupted is returned by ReadCode when the user presses Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Validation is the result of checking whether code is ready for submission.
type Validation int

const (
	// Complete code is submitted when Enter is pressed.
	Complete Validation = iota
	// Incomplete code makes Enter insert a newline instead.
	Incomplete
)

// Highlighter turns code into styled text. The concatenation of the segments
// of the returned text must be exactly the input.
type Highlighter interface {
	Get(code string) ui.Text
}

// Hinter suggests how the code might continue. The return value is the
// suffix to show after the cursor, or "" for no hint.
type Hinter interface {
	Hint(code string) string
}

// Completer generates candidate completions for the text between some start
// position and the dot. It returns the start position and the candidates,
// which may be empty.
type Completer interface {
	Complete(code string, dot int) (int, []string)
}

// Validator decides whether Enter submits the code or continues it on a new
// line.
type Validator interface {
	Validate(code string) Validation
}

// Config customizes an Editor. All fields may be left zero-valued, in which
// case the respective feature is turned off.
type Config struct {
	// Prompt for the first line, and for subsequent lines.
	Prompt     ui.Text
	ContPrompt ui.Text
	// Styling for the inline hint.
	HintStyling ui.Styling

	Highlighter Highlighter
	Hinter      Hinter
	Completer   Completer
	Validator   Validator

	// History to walk with Up and Down. May be nil.
	History *store.Store
}

// Editor is a line editor for a terminal. It is not safe for concurrent use.
type Editor struct {
	in, out *os.File
	cfg     Config
	writer  writer
}

// New creates an Editor that reads from in, which must be a terminal, and
// writes to out.
func New(in, out *os.File, cfg Config) *Editor {
	return &Editor{in: in, out: out, cfg: cfg, writer: writer{out: out}}
}

// ReadCode reads a unit of code, which may span multiple lines, and returns
// it without the final newline. It returns ErrInterrupted if the user presses
// Ctrl-C, and io.EOF if the user presses Ctrl-D on an empty buffer or the
// terminal is gone.
func (ed *Editor) ReadCode() (string, error) {
	restore, err := setup(ed.in)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Println("failed to restore terminal attribute:", err)
		}
	}()

	rd := newReader(ed.in)
	buf := buffer{}
	// Cursor into the history when walking it with Up, and the buffer
	// content stashed when the walk started.
	var hist *store.Cursor
	var stash string
	hint := ""

	for {
		hint = ""
		if ed.cfg.Hinter != nil && buf.content != "" && buf.dot == len(buf.content) {
			hint = ed.cfg.Hinter.Hint(buf.content)
		}
		if err := ed.redraw(buf, hint, false); err != nil {
			return "", err
		}

		k, err := rd.readKey()
		if err != nil {
			if err == io.EOF || errors.Is(err, syscall.EIO) {
				// The terminal is gone. EIO is what reading the controlling
				// side of a pty gives after the other side is closed.
				ed.writer.finish()
				return "", io.EOF
			}
			if isRecoverableReadError(err) {
				logger.Println("ignored error reading key:", err)
				continue
			}
			ed.writer.finish()
			return "", err
		}

		edited := false
		switch k {
		case ui.K(ui.Enter):
			if ed.validate(buf.content) == Incomplete {
				buf.insert("\n")
				edited = true
				break
			}
			if err := ed.redraw(buf, "", true); err != nil {
				return "", err
			}
			ed.writer.finish()
			return buf.content, nil
		case ui.K('C', ui.Ctrl):
			ed.writer.finish()
			return "", ErrInterrupted
		case ui.K('D', ui.Ctrl):
			if buf.content == "" {
				ed.writer.finish()
				return "", io.EOF
			}
			buf.content, buf.dot = killRuneRight(buf.content, buf.dot)
			edited = true
		case ui.K(ui.Backspace), ui.K('H', ui.Ctrl):
			buf.content, buf.dot = killRuneLeft(buf.content, buf.dot)
			edited = true
		case ui.K(ui.Delete):
			buf.content, buf.dot = killRuneRight(buf.content, buf.dot)
			edited = true
		case ui.K(ui.Left), ui.K('B', ui.Ctrl):
			buf.dot = moveDotLeft(buf.content, buf.dot)
		case ui.K(ui.Right), ui.K('F', ui.Ctrl):
			if buf.dot == len(buf.content) && hint != "" {
				buf.insert(hint)
				edited = true
			} else {
				buf.dot = moveDotRight(buf.content, buf.dot)
			}
		case ui.K(ui.Home), ui.K('A', ui.Ctrl):
			buf.dot = moveDotSOL(buf.content, buf.dot)
		case ui.K(ui.End), ui.K('E', ui.Ctrl):
			if buf.dot == len(buf.content) && hint != "" {
				buf.insert(hint)
				edited = true
			} else {
				buf.dot = moveDotEOL(buf.content, buf.dot)
			}
		case ui.K(ui.Up):
			if moveDotSOL(buf.content, buf.dot) > 0 {
				buf.dot = moveDotUp(buf.content, buf.dot)
				break
			}
			if ed.cfg.History == nil {
				break
			}
			if hist == nil {
				// Walk only entries that extend what has been typed so far.
				hist = ed.cfg.History.Cursor(buf.content)
				stash = buf.content
			}
			hist.Prev()
			cmd, err := hist.Get()
			if err != nil {
				// Already past the oldest entry; stay on it.
				hist.Next()
				break
			}
			buf = buffer{content: cmd, dot: len(cmd)}
		case ui.K(ui.Down):
			if moveDotEOL(buf.content, buf.dot) < len(buf.content) {
				buf.dot = moveDotDown(buf.content, buf.dot)
				break
			}
			if hist == nil {
				break
			}
			hist.Next()
			cmd, err := hist.Get()
			if err != nil {
				// Walked past the newest entry; restore what was being
				// typed when the walk started.
				buf = buffer{content: stash, dot: len(stash)}
				hist = nil
				break
			}
			buf = buffer{content: cmd, dot: len(cmd)}
		case ui.K('K', ui.Ctrl):
			buf.content, buf.dot = killLineRight(buf.content, buf.dot)
			edited = true
		case ui.K('U', ui.Ctrl):
			buf.content, buf.dot = killLineLeft(buf.content, buf.dot)
			edited = true
		case ui.K('W', ui.Ctrl):
			buf.content, buf.dot = killWordLeft(buf.content, buf.dot)
			edited = true
		case ui.K('L', ui.Ctrl):
			if err := ed.writer.clear(); err != nil {
				return "", err
			}
		case ui.K(ui.Tab):
			if ed.cfg.Completer == nil {
				break
			}
			start, cands := ed.cfg.Completer.Complete(buf.content, buf.dot)
			if len(cands) == 0 || start < 0 || start > buf.dot {
				break
			}
			if prefix := commonPrefix(cands); prefix != "" && prefix != buf.content[start:buf.dot] {
				buf.replace(start, prefix)
				edited = true
			}
		default:
			if k.Mod == 0 && k.Rune > 0 && !unicode.IsControl(k.Rune) {
				buf.insert(string(k.Rune))
				edited = true
			}
		}
		if edited {
			// The content is new code now; a later Up starts a fresh walk.
			hist = nil
		}
	}
}

func (ed *Editor) validate(code string) Validation {
	if ed.cfg.Validator == nil {
		return Complete
	}
	return ed.cfg.Validator.Validate(code)
}

func (ed *Editor) redraw(buf buffer, hint string, final bool) error {
	var styled ui.Text
	if ed.cfg.Highlighter != nil {
		styled = ed.cfg.Highlighter.Get(buf.content)
	} else if buf.content != "" {
		styled = ui.T(buf.content)
	}
	var hintText ui.Text
	if !final && hint != "" {
		hintText = ui.StyleText(ui.T(hint), ed.cfg.HintStyling)
	}
	rows, dot := layout(ed.cfg.Prompt, ed.cfg.ContPrompt, styled, buf.dot, hintText, ed.width())
	return ed.writer.draw(rows, dot)
}

func (ed *Editor) width() int {
	// Queried on every redraw rather than by listening for SIGWINCH; the
	// next keystroke after a resize repaints with the new width.
	_, width := sys.WinSize(ed.in)
	if width <= 0 {
		return 80
	}
	return width
}

func commonPrefix(cands []string) string {
	prefix := cands[0]
	for _, cand := range cands[1:] {
		for !strings.HasPrefix(cand, prefix) {
			_, w := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-w]
		}
	}
	return prefix
}
