package shell

import (
	"io"
	"strings"
	"testing"
)

func TestMinEditor(t *testing.T) {
	var out strings.Builder
	ed := newMinEditor(strings.NewReader("a\u2028b\nlast"), &out)

	line, err := ed.ReadCode()
	if line != "a\nb" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "a\nb")
	}
	// The final line has no line ending; it is still a line.
	line, err = ed.ReadCode()
	if line != "last" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "last")
	}
	_, err = ed.ReadCode()
	if err != io.EOF {
		t.Errorf("got err %v, want io.EOF", err)
	}
	if got, want := out.String(), ">> >> >> "; got != want {
		t.Errorf("got prompts %q, want %q", got, want)
	}
}

func TestMinEditor_ChopsCRLF(t *testing.T) {
	var out strings.Builder
	ed := newMinEditor(strings.NewReader("x := 1\r\n"), &out)
	line, err := ed.ReadCode()
	if line != "x := 1" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "x := 1")
	}
}
