package ui

import (
	"reflect"
	"testing"

	"github.com/goeval/goeval/pkg/tt"
)

var Args = tt.Args

func TestT(t *testing.T) {
	tt.Test(t, T,
		Args("test").Rets(Text{&Segment{Text: "test"}}),
		Args("test red", FgRed).Rets(Text{&Segment{
			Style: Style{Fg: Red}, Text: "test red"}}),
		Args("test red bold", FgRed, Bold).Rets(Text{&Segment{
			Style: Style{Fg: Red, Bold: true}, Text: "test red bold"}}),
	)
}

func TestConcatText(t *testing.T) {
	text := T("red", FgRed).ConcatText(T("blue", FgBlue))
	want := Text{
		&Segment{Style: Style{Fg: Red}, Text: "red"},
		&Segment{Style: Style{Fg: Blue}, Text: "blue"},
	}
	if !reflect.DeepEqual(text, want) {
		t.Errorf("ConcatText -> %v, want %v", text, want)
	}
}

func TestCountLines(t *testing.T) {
	tt.Test(t, Text.CountLines,
		Args(T("a")).Rets(1),
		Args(T("a\nb")).Rets(2),
		Args(T("a\nb").ConcatText(T("c\nd", FgRed))).Rets(3),
	)
}

func TestSplitByRune(t *testing.T) {
	tt.Test(t, Text.SplitByRune,
		Args(T(""), '\n').Rets([]Text{T("")}),
		Args(T("a\nb"), '\n').Rets([]Text{T("a"), T("b")}),
		Args(T("a\nb", FgRed), '\n').Rets([]Text{T("a", FgRed), T("b", FgRed)}),
		// Split points on segment borders are pasted together.
		Args(T("a", FgRed).ConcatText(T("b\nc", FgBlue)), '\n').Rets(
			[]Text{
				T("a", FgRed).ConcatText(T("b", FgBlue)),
				T("c", FgBlue),
			}),
	)
}

func TestTrimWcwidth(t *testing.T) {
	tt.Test(t, Text.TrimWcwidth,
		Args(T("abc"), 2).Rets(T("ab")),
		Args(T("你好"), 3).Rets(T("你")),
		Args(T("a", FgRed).ConcatText(T("bc", FgBlue)), 2).Rets(
			T("a", FgRed).ConcatText(T("b", FgBlue))),
	)
}

type textVTStringTest struct {
	text         Text
	wantVTString string
}

func testTextVTString(t *testing.T, tests []textVTStringTest) {
	t.Helper()
	for _, test := range tests {
		vtString := test.text.VTString()
		if vtString != test.wantVTString {
			t.Errorf("got VTString %q, want %q", vtString, test.wantVTString)
		}
	}
}

func TestVTString(t *testing.T) {
	testTextVTString(t, []textVTStringTest{
		// Unstyled segments clear any existing SGR state.
		{T("foo"), "\033[mfoo"},
		{T("foo", Bold), "\033[;1mfoo\033[m"},
		{T("foo", FgRed, Bold), "\033[;1;31mfoo\033[m"},
		{T("foo", FgRed).ConcatText(T("bar")), "\033[;31mfoo\033[m\033[mbar"},
	})
}
