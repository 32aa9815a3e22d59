// Package wcwidth provides utilities for determining the width of characters
// and strings when displayed to the terminal.
package wcwidth

import (
	"strings"
	"sync"
	"unicode"
)

// Marks whose glyphs occupy no cells of their own.
var zeroWidth = []*unicode.RangeTable{unicode.Mn, unicode.Me, unicode.Cf}

// Ranges of runes that occupy two cells: East Asian wide and fullwidth
// characters, after Markus Kuhn's classical wcwidth.
var doubleWidth = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1100, 0x115f, 1}, // Hangul Jamo initial consonants
		{0x2329, 0x232a, 1}, // angle brackets
		{0x2e80, 0x303e, 1}, // CJK radicals to CJK symbols
		{0x3041, 0x33ff, 1}, // Hiragana to CJK compatibility
		{0x3400, 0x4dbf, 1}, // CJK extension A
		{0x4e00, 0x9fff, 1}, // CJK unified ideographs
		{0xa000, 0xa4cf, 1}, // Yi
		{0xac00, 0xd7a3, 1}, // Hangul syllables
		{0xf900, 0xfaff, 1}, // CJK compatibility ideographs
		{0xfe10, 0xfe19, 1}, // vertical forms
		{0xfe30, 0xfe6f, 1}, // CJK compatibility forms
		{0xff00, 0xff60, 1}, // fullwidth forms
		{0xffe0, 0xffe6, 1},
	},
	R32: []unicode.Range32{
		{0x1f300, 0x1f64f, 1}, // emoji
		{0x20000, 0x2fffd, 1}, // CJK extensions B and beyond
		{0x30000, 0x3fffd, 1},
	},
}

// overrides stores widths overridden by Override. Read and written
// concurrently, so it needs to be a sync.Map.
var overrides sync.Map

// OfRune returns the display width of a rune.
func OfRune(r rune) int {
	if w, ok := overrides.Load(r); ok {
		return w.(int)
	}
	switch {
	case unicode.IsOneOf(zeroWidth, r):
		return 0
	case unicode.Is(doubleWidth, r):
		return 2
	default:
		return 1
	}
}

// Override overrides the width of a rune to be a custom value. Overrides with
// a negative width remove the override. It is safe to call concurrently with
// OfRune.
func Override(r rune, w int) {
	if w < 0 {
		Unoverride(r)
		return
	}
	overrides.Store(r, w)
}

// Unoverride removes the override on a rune.
func Unoverride(r rune) {
	overrides.Delete(r)
}

// Of returns the display width of a string, the sum of the widths of its
// runes.
func Of(s string) (w int) {
	for _, r := range s {
		w += OfRune(r)
	}
	return
}

// Trim trims a string to fit within wmax cells.
func Trim(s string, wmax int) string {
	for i, r := range s {
		wmax -= OfRune(r)
		if wmax < 0 {
			return s[:i]
		}
	}
	return s
}

// Force trims a string to fit within width cells, and pads it with spaces if
// it is shorter than that.
func Force(s string, width int) string {
	s = Trim(s, width)
	return s + strings.Repeat(" ", width-Of(s))
}

// TrimEachLine trims each line of s to fit within wmax cells.
func TrimEachLine(s string, wmax int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Trim(line, wmax)
	}
	return strings.Join(lines, "\n")
}
