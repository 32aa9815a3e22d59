package ui

import (
	"testing"

	"github.com/goeval/goeval/pkg/tt"
)

func TestStyleText(t *testing.T) {
	tt.Test(t, StyleText,
		// Foreground color
		Args(T("foo"), FgRed).Rets(
			Text{&Segment{Style{Fg: Red}, "foo"}}),
		// Override foreground color
		Args(Text{&Segment{Style{Fg: Red}, "foo"}}, FgMagenta).Rets(
			Text{&Segment{Style{Fg: Magenta}, "foo"}}),

		// Background color
		Args(T("foo"), BgRed).Rets(
			Text{&Segment{Style{Bg: Red}, "foo"}}),

		// Bold, false -> true
		Args(T("foo"), Bold).Rets(
			Text{&Segment{Style{Bold: true}, "foo"}}),
		// Bold, true -> true
		Args(Text{&Segment{Style{Bold: true}, "foo"}}, Bold).Rets(
			Text{&Segment{Style{Bold: true}, "foo"}}),
		// No Bold, true -> false
		Args(Text{&Segment{Style{Bold: true}, "foo"}}, NoBold).Rets(
			Text{&Segment{Text: "foo"}}),
		// Toggle Bold, true -> false
		Args(Text{&Segment{Style{Bold: true}, "foo"}}, ToggleBold).Rets(
			Text{&Segment{Text: "foo"}}),
		// Toggle Bold, false -> true
		Args(T("foo"), ToggleBold).Rets(
			Text{&Segment{Style{Bold: true}, "foo"}}),

		// For a Text with multiple Segments, the styling is applied to all the
		// Segments.
		Args(Text{
			&Segment{Text: "foo"}, &Segment{Style{Bold: true}, "bar"}}, FgRed).Rets(
			Text{
				&Segment{Style{Fg: Red}, "foo"},
				&Segment{Style{Fg: Red, Bold: true}, "bar"}}),

		// Multiple stylings are applied in order.
		Args(T("foo"), FgRed, Bold, NoBold).Rets(
			Text{&Segment{Style{Fg: Red}, "foo"}}),

		// nil Styling's are ignored.
		Args(T("foo"), nil, Bold, nil).Rets(
			Text{&Segment{Style{Bold: true}, "foo"}}),
	)
}

func TestParseStyling(t *testing.T) {
	tt.Test(t, parseStylingEquiv,
		Args("default").Rets(Style{}),
		Args("red").Rets(Style{Fg: Red}),
		Args("fg-red").Rets(Style{Fg: Red}),
		Args("bg-red").Rets(Style{Bg: Red}),
		Args("bright-red").Rets(Style{Fg: BrightRed}),
		Args("color30").Rets(Style{Fg: XTerm256Color(30)}),
		Args("#334455").Rets(Style{Fg: TrueColor(0x33, 0x44, 0x55)}),
		Args("bold").Rets(Style{Bold: true}),
		Args("no-dim").Rets(Style{}),
		Args("toggle-inverse").Rets(Style{Inverse: true}),
		Args("red bold").Rets(Style{Fg: Red, Bold: true}),
	)
}

// parseStylingEquiv applies the Styling parsed from s to an empty Style, so
// that test cases can be written against concrete Style values.
func parseStylingEquiv(s string) Style {
	return ApplyStyling(Style{}, ParseStyling(s))
}

func TestParseStyling_Invalid(t *testing.T) {
	for _, s := range []string{"tomato", "fg-tomato", "no-underline2", "red bad"} {
		if styling := ParseStyling(s); styling != nil {
			t.Errorf("ParseStyling(%q) -> %v, want nil", s, styling)
		}
	}
}
