package edit

import (
	"testing"

	"github.com/goeval/goeval/pkg/tt"
	"github.com/goeval/goeval/pkg/ui"
)

var T = ui.T

func TestLayout(t *testing.T) {
	prompt := T(">> ", ui.FgYellow)
	cont := T(".. ", ui.Dim)

	tt.Test(t, layout,
		// Empty content. The dot is right after the prompt.
		Args(prompt, cont, ui.Text(nil), 0, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt}, point{0, 3}),
		// Dot in the middle and at the end of a single line.
		Args(prompt, cont, T("abc"), 1, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt.ConcatText(T("abc"))}, point{0, 4}),
		Args(prompt, cont, T("abc"), 3, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt.ConcatText(T("abc"))}, point{0, 6}),
		// Each logical line after the first gets the continuation prompt.
		Args(prompt, cont, T("ab\ncd"), 4, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt.ConcatText(T("ab")), cont.ConcatText(T("cd"))},
			point{1, 4}),
		// Dot on the newline itself shows at the end of the line.
		Args(prompt, cont, T("ab\ncd"), 2, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt.ConcatText(T("ab")), cont.ConcatText(T("cd"))},
			point{0, 5}),
		// Content ending with a newline leaves the dot after the
		// continuation prompt on an empty line.
		Args(prompt, cont, T("a\n"), 2, ui.Text(nil), 10).Rets(
			[]ui.Text{prompt.ConcatText(T("a")), cont}, point{1, 3}),
		// Long lines wrap.
		Args(T("> "), cont, T("abcdef"), 5, ui.Text(nil), 4).Rets(
			[]ui.Text{T("> ab"), T("cdef")}, point{1, 3}),
		// A dot past a full row has no cell of its own; it is clamped to
		// the last cell.
		Args(T("> "), cont, T("abcdef"), 6, ui.Text(nil), 4).Rets(
			[]ui.Text{T("> ab"), T("cdef")}, point{1, 3}),
		// Wide runes wrap before the edge when they do not fit.
		Args(ui.Text(nil), cont, T("精灵语"), 9, ui.Text(nil), 4).Rets(
			[]ui.Text{T("精灵"), T("语")}, point{1, 2}),
		// The hint goes after the content, under the dot.
		Args(T("> "), cont, T("ab"), 2, T("cd", ui.FgBrightBlack), 10).Rets(
			[]ui.Text{T("> ab").ConcatText(T("cd", ui.FgBrightBlack))},
			point{0, 4}),
		// Styled content keeps its segments; adjacent runes of the same
		// style are merged.
		Args(ui.Text(nil), cont, T("if", ui.FgBlue).ConcatText(T(" x")), 4, ui.Text(nil), 10).Rets(
			[]ui.Text{T("if", ui.FgBlue).ConcatText(T(" x"))}, point{0, 4}),
	)
}
