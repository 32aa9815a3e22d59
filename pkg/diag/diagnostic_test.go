package diag

import (
	"strings"
	"testing"
)

func spanned(label string, from, to int) SpannedMessage {
	return SpannedMessage{Label: label, Span: &Ranging{From: from, To: to}}
}

func TestShow_CaretAlignment(t *testing.T) {
	d := &Diagnostic{
		UserCode: true,
		Spanned:  []SpannedMessage{spanned("not found", 4, 7)},
		Message:  "cannot resolve name",
	}
	got := d.Show(3)
	lines := strings.Split(got, "\n")
	caretLine := stripSGR(lines[0])
	want := strings.Repeat(" ", 7) + "^^^ not found"
	if caretLine != want {
		t.Errorf("caret line = %q, want %q", caretLine, want)
	}
}

func TestShow_SpanWithoutLabelHasNoTrailingSpace(t *testing.T) {
	d := &Diagnostic{
		UserCode: true,
		Spanned:  []SpannedMessage{spanned("", 0, 2)},
	}
	got := stripSGR(d.Show(3))
	if got != "   ^^" {
		t.Errorf("caret line = %q, want %q", got, "   ^^")
	}
}

func TestShow_MalformedSpanDegrades(t *testing.T) {
	tests := []struct {
		name string
		sm   SpannedMessage
		want string
	}{
		{"end before start", spanned("bad", 5, 2), "         bad"},
		{"negative start", spanned("bad", -7, -4), "^^^ bad"},
		{"zero width", spanned("here", 1, 1), "     here"},
	}
	for _, test := range tests {
		d := &Diagnostic{UserCode: true, Spanned: []SpannedMessage{test.sm}}
		got := stripSGR(d.Show(3))
		if got != test.want {
			t.Errorf("%s: rendered %q, want %q", test.name, got, test.want)
		}
	}
}

func TestShow_MessageWithoutSpan(t *testing.T) {
	d := &Diagnostic{
		UserCode: true,
		Spanned:  []SpannedMessage{{Label: "straddles generated code"}},
		Message:  "mismatched types",
	}
	got := stripSGR(d.Show(3))
	want := "straddles generated code\nmismatched types"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestShow_HelpAndHint(t *testing.T) {
	d := &Diagnostic{
		UserCode: true,
		Message:  "undefined: foo",
		Help:     []string{"declare foo before use", "check the spelling"},
		Hint:     "names are case sensitive",
	}
	got := stripSGR(d.Show(3))
	want := "undefined: foo\nhelp: declare foo before use\nhelp: check the spelling\nnames are case sensitive"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestShow_GeneratedCodeUsesRenderedFallback(t *testing.T) {
	d := &Diagnostic{
		UserCode: false,
		Spanned:  []SpannedMessage{spanned("misleading", 0, 4)},
		Rendered: "raw compiler output\n",
	}
	got := d.Show(3)
	if strings.Contains(got, "^") {
		t.Errorf("rendered carets for a generated-code diagnostic: %q", got)
	}
	if !strings.Contains(got, ":last_error_json") {
		t.Errorf("rendering misses the pointer to :last_error_json: %q", got)
	}
	if !strings.HasSuffix(got, "raw compiler output") {
		t.Errorf("rendering misses the raw fallback: %q", got)
	}
}

// stripSGR removes the escape sequences this package writes, so that tests
// can assert on the plain text layout.
func stripSGR(s string) string {
	for _, seq := range []string{"\033[91m", "\033[94m", "\033[31;1m", "\033[1m", "\033[m"} {
		s = strings.ReplaceAll(s, seq, "")
	}
	return s
}
