package edit

import (
	"github.com/goeval/goeval/pkg/ui"
	"github.com/goeval/goeval/pkg/wcwidth"
)

// point addresses a cell in the rendered editing area: a zero-based row index
// and a column in cells from the left edge.
type point struct {
	row, col int
}

// layout renders the editing area as a list of screen rows no wider than
// width cells, along with the on-screen position of the dot. The first
// logical line of the content is prefixed with prompt and subsequent ones
// with contPrompt; hint, if non-empty, is appended after the content.
//
// The concatenation of the segments of content must be exactly the code
// being edited, so that dot, a byte index into the code, can be located.
func layout(prompt, contPrompt, content ui.Text, dot int, hint ui.Text, width int) ([]ui.Text, point) {
	b := rowBuilder{width: width}
	dotPos := point{-1, -1}
	b.writeText(prompt)
	base := 0
	for _, seg := range content {
		for i, r := range seg.Text {
			if r == '\n' {
				if base+i == dot {
					dotPos = b.here()
				}
				b.newline()
				b.writeText(contPrompt)
			} else {
				p := b.writeRune(r, seg.Style)
				if base+i == dot {
					dotPos = p
				}
			}
		}
		base += len(seg.Text)
	}
	if dotPos.row == -1 {
		// The dot is at the end of the content.
		dotPos = b.here()
	}
	b.writeText(hint)
	return b.finish(), dotPos
}

// rowBuilder builds up the rows of the editing area, wrapping at width cells.
type rowBuilder struct {
	width int
	rows  []ui.Text
	row   ui.Text
	cells int
}

// here returns the point a cursor placed at the end of the current row
// occupies. When the row is already full the last cell is used; terminals
// have no addressable cell in the wrap margin.
func (b *rowBuilder) here() point {
	if b.cells >= b.width {
		return point{len(b.rows), b.width - 1}
	}
	return point{len(b.rows), b.cells}
}

// writeRune appends r to the current row, wrapping to a new row first if it
// does not fit, and returns the point where it was written.
func (b *rowBuilder) writeRune(r rune, style ui.Style) point {
	w := wcwidth.OfRune(r)
	if b.cells+w > b.width {
		b.newline()
	}
	p := point{len(b.rows), b.cells}
	if n := len(b.row); n > 0 && b.row[n-1].Style == style {
		b.row[n-1].Text += string(r)
	} else {
		b.row = append(b.row, &ui.Segment{Style: style, Text: string(r)})
	}
	b.cells += w
	return p
}

func (b *rowBuilder) writeText(t ui.Text) {
	for _, seg := range t {
		for _, r := range seg.Text {
			if r == '\n' {
				b.newline()
			} else {
				b.writeRune(r, seg.Style)
			}
		}
	}
}

func (b *rowBuilder) newline() {
	b.rows = append(b.rows, b.row)
	b.row = nil
	b.cells = 0
}

func (b *rowBuilder) finish() []ui.Text {
	return append(b.rows, b.row)
}
