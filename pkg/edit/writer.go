package edit

import (
	"fmt"
	"os"
	"strings"

	"github.com/goeval/goeval/pkg/ui"
)

// writer renders the editing area on the terminal. It remembers which row of
// the area the cursor was left on, so that the next draw can move back to the
// first row and repaint in place.
type writer struct {
	out *os.File
	// Rows drawn by the last draw, and the row the cursor was left on.
	rows   int
	dotRow int
}

// draw repaints the editing area with the given rows and leaves the cursor at
// the dot. Everything is collected in a single write to avoid flickering.
// Rows are joined with explicit "\r\n"; the carriage return also defuses the
// pending-wrap state a full row leaves the terminal in.
func (w *writer) draw(rows []ui.Text, dot point) error {
	var sb strings.Builder
	if w.dotRow > 0 {
		fmt.Fprintf(&sb, "\033[%dA", w.dotRow)
	}
	sb.WriteString("\r\033[J")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\r\n")
		}
		sb.WriteString(row.VTString())
	}
	sb.WriteString("\r")
	if up := len(rows) - 1 - dot.row; up > 0 {
		fmt.Fprintf(&sb, "\033[%dA", up)
	}
	if dot.col > 0 {
		fmt.Fprintf(&sb, "\033[%dC", dot.col)
	}
	w.rows = len(rows)
	w.dotRow = dot.row
	_, err := w.out.WriteString(sb.String())
	return err
}

// finish moves the cursor below the editing area and onto a fresh line,
// leaving the area as scrollback.
func (w *writer) finish() error {
	var sb strings.Builder
	if down := w.rows - 1 - w.dotRow; down > 0 {
		fmt.Fprintf(&sb, "\033[%dB", down)
	}
	sb.WriteString("\r\n")
	w.rows = 0
	w.dotRow = 0
	_, err := w.out.WriteString(sb.String())
	return err
}

// clear erases the whole screen and moves the cursor to the top left, so the
// next draw repaints from there.
func (w *writer) clear() error {
	w.rows = 0
	w.dotRow = 0
	_, err := w.out.WriteString("\033[H\033[2J")
	return err
}
