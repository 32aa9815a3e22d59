package edit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goeval/goeval/pkg/strutil"
	"github.com/goeval/goeval/pkg/wcwidth"
)

// buffer holds the text being edited along with the position of the dot, as
// a byte index into the content. The dot is always on a rune boundary,
// between 0 and len(content) inclusive.
type buffer struct {
	content string
	dot     int
}

func (b *buffer) insert(text string) {
	b.content = b.content[:b.dot] + text + b.content[b.dot:]
	b.dot += len(text)
}

// replace substitutes content[from:b.dot] with text and leaves the dot after
// the inserted text.
func (b *buffer) replace(from int, text string) {
	b.content = b.content[:from] + text + b.content[b.dot:]
	b.dot = from + len(text)
}

// Moves the dot left one rune. Does nothing if the dot is at the beginning of
// the buffer.
func moveDotLeft(buffer string, dot int) int {
	_, w := utf8.DecodeLastRuneInString(buffer[:dot])
	return dot - w
}

// Moves the dot right one rune. Does nothing if the dot is at the end of the
// buffer.
func moveDotRight(buffer string, dot int) int {
	_, w := utf8.DecodeRuneInString(buffer[dot:])
	return dot + w
}

// Moves the dot to the start of the current line.
func moveDotSOL(buffer string, dot int) int {
	return strutil.FindLastSOL(buffer[:dot])
}

// Moves the dot to the end of the current line.
func moveDotEOL(buffer string, dot int) int {
	return strutil.FindFirstEOL(buffer[dot:]) + dot
}

// Moves the dot up one line, trying to preserve the visual horizontal
// position. Does nothing if dot is already on the first line of the buffer.
func moveDotUp(buffer string, dot int) int {
	sol := strutil.FindLastSOL(buffer[:dot])
	if sol == 0 {
		// Already in the first line.
		return dot
	}
	prevEOL := sol - 1
	prevSOL := strutil.FindLastSOL(buffer[:prevEOL])
	width := wcwidth.Of(buffer[sol:dot])
	return prevSOL + len(wcwidth.Trim(buffer[prevSOL:prevEOL], width))
}

// Moves the dot down one line, trying to preserve the visual horizontal
// position. Does nothing if dot is already on the last line of the buffer.
func moveDotDown(buffer string, dot int) int {
	eol := strutil.FindFirstEOL(buffer[dot:]) + dot
	if eol == len(buffer) {
		// Already in the last line.
		return dot
	}
	nextSOL := eol + 1
	nextEOL := strutil.FindFirstEOL(buffer[nextSOL:]) + nextSOL
	sol := strutil.FindLastSOL(buffer[:dot])
	width := wcwidth.Of(buffer[sol:dot])
	return nextSOL + len(wcwidth.Trim(buffer[nextSOL:nextEOL], width))
}

// Deletes the rune left of the dot.
func killRuneLeft(buffer string, dot int) (string, int) {
	_, w := utf8.DecodeLastRuneInString(buffer[:dot])
	return buffer[:dot-w] + buffer[dot:], dot - w
}

// Deletes the rune right of the dot.
func killRuneRight(buffer string, dot int) (string, int) {
	_, w := utf8.DecodeRuneInString(buffer[dot:])
	return buffer[:dot] + buffer[dot+w:], dot
}

// Deletes the text between the dot and the start of the current line.
func killLineLeft(buffer string, dot int) (string, int) {
	sol := strutil.FindLastSOL(buffer[:dot])
	return buffer[:sol] + buffer[dot:], sol
}

// Deletes the text between the dot and the end of the current line.
func killLineRight(buffer string, dot int) (string, int) {
	eol := strutil.FindFirstEOL(buffer[dot:]) + dot
	return buffer[:dot] + buffer[eol:], dot
}

// Deletes the last word to the left of the dot. A word is a run of non-space
// runes.
func killWordLeft(buffer string, dot int) (string, int) {
	left := buffer[:dot]
	left = strings.TrimRightFunc(left, unicode.IsSpace)
	left = strings.TrimRightFunc(left, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	return left + buffer[dot:], len(left)
}
