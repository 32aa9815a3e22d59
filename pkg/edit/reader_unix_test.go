//go:build unix

package edit

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/goeval/goeval/pkg/must"
	"github.com/goeval/goeval/pkg/ui"
)

var K = ui.K

var readKeyTests = []struct {
	input string
	want  ui.Key
}{
	// Simple graphical key.
	{"x", K('x')},
	{"X", K('X')},
	{" ", K(' ')},

	// Ctrl key.
	{"\001", K('A', ui.Ctrl)},
	{"\033", K('[', ui.Ctrl)},

	// Special Ctrl keys that do not obey the usual 0x40 rule.
	{"\000", K('`', ui.Ctrl)},
	{"\x1e", K('6', ui.Ctrl)},
	{"\x1f", K('/', ui.Ctrl)},

	// Ambiguous Ctrl keys; the reader uses the non-Ctrl form as canonical.
	{"\n", K('\n')},
	{"\t", K('\t')},
	{"\x7f", K('\x7f')}, // backspace

	// Enter, both bare and in the CRLF form left by onlcr translation.
	{"\r", K(ui.Enter)},
	{"\r\n", K(ui.Enter)},

	// Alt plus simple graphical key.
	{"\033a", K('a', ui.Alt)},
	{"\033[", K('[', ui.Alt)},

	// G3-style key.
	{"\033OA", K(ui.Up)},
	{"\033OH", K(ui.Home)},

	// G3-style key with leading Escape.
	{"\033\033OA", K(ui.Up, ui.Alt)},

	// Alt-O. This is handled as a special case because it looks like a
	// G3-style key.
	{"\033O", K('O', ui.Alt)},

	// CSI-sequence key identified by the ending rune.
	{"\033[A", K(ui.Up)},
	{"\033[H", K(ui.Home)},
	{"\033[Z", K(ui.Tab, ui.Shift)},
	// Modifiers.
	{"\033[1;2A", K(ui.Up, ui.Shift)},
	{"\033[1;5A", K(ui.Up, ui.Ctrl)},
	// The modifier below should be for Meta, but we conflate Alt and Meta.
	{"\033[1;9A", K(ui.Up, ui.Alt)},

	// CSI-sequence key with one argument, ending in '~'.
	{"\033[1~", K(ui.Home)},
	{"\033[11~", K(ui.F1)},
	{"\033[3~", K(ui.Delete)},
	// Modified.
	{"\033[3;5~", K(ui.Delete, ui.Ctrl)},
	// Urxvt-flavor modifier, shifting the '~' to reflect the modifier.
	{"\033[1$", K(ui.Home, ui.Shift)},
	{"\033[1^", K(ui.Home, ui.Ctrl)},
	// With a leading Escape.
	{"\033\033[1~", K(ui.Home, ui.Alt)},

	// CSI-sequence key with three arguments and ending in '~'. The first
	// argument is always 27, the second identifies the modifier and the last
	// identifies the key.
	{"\033[27;4;63~", K(';', ui.Shift, ui.Alt)},

	// Multi-byte runes.
	{"é", K('é')},
	{"精", K('精')},
}

func TestReadKey(t *testing.T) {
	rd, w := setupReader(t)

	for _, test := range readKeyTests {
		t.Run(test.input, func(t *testing.T) {
			w.WriteString(test.input)
			k, err := rd.readKey()
			if k != test.want {
				t.Errorf("got key %v, want %v", k, test.want)
			}
			if err != nil {
				t.Errorf("got err %v, want %v", err, nil)
			}
		})
	}
}

var readKeyBadSeqTests = []struct {
	input      string
	wantErrMsg string
}{
	// CSI needs to be terminated by something that is not a parameter
	{"\033[1", "incomplete CSI"},
	{"\033[;", "incomplete CSI"},
	{"\033[1;", "incomplete CSI"},

	// csiSeqByLast should have 0 or 2 parameters
	{"\033[1;2;3A", "bad CSI"},
	// csiSeqByLast with 2 parameters should have first parameter = 1
	{"\033[2;1A", "bad CSI"},
	// xterm-style modifier should be 0 to 16
	{"\033[1;17A", "bad CSI"},
	// unknown CSI terminator
	{"\033[x", "bad CSI"},

	// G3 allows a small list of allowed bytes after \033O
	{"\033Ox", "bad G3"},
}

func TestReadKey_BadSeq(t *testing.T) {
	rd, w := setupReader(t)

	for _, test := range readKeyBadSeqTests {
		t.Run(test.input, func(t *testing.T) {
			w.WriteString(test.input)
			k, err := rd.readKey()
			if err == nil {
				t.Fatalf("got nil err with key %v, want non-nil error", k)
			}
			if !isRecoverableReadError(err) {
				t.Errorf("got unrecoverable err %v, want recoverable", err)
			}
			errMsg := err.Error()
			if !strings.HasPrefix(errMsg, test.wantErrMsg) {
				t.Errorf("got err with message %v, want message starting with %v",
					errMsg, test.wantErrMsg)
			}
		})
	}
}

func TestReadKey_CRNotFollowedByLF(t *testing.T) {
	rd, w := setupReader(t)
	w.WriteString("\rx")

	if k := mustReadKey(t, rd); k != K(ui.Enter) {
		t.Errorf("got key %v, want Enter", k)
	}
	// The rune read when peeking past the CR is not lost.
	if k := mustReadKey(t, rd); k != K('x') {
		t.Errorf("got key %v, want x", k)
	}
}

func TestReadKey_EOF(t *testing.T) {
	rd, w := setupReader(t)
	w.Close()

	_, err := rd.readKey()
	if err != io.EOF {
		t.Errorf("got err %v, want io.EOF", err)
	}
}

func setupReader(t *testing.T) (*reader, *os.File) {
	pr, pw := must.Pipe()
	t.Cleanup(func() {
		pr.Close()
		pw.Close()
	})
	return newReader(pr), pw
}

func mustReadKey(t *testing.T, rd *reader) ui.Key {
	t.Helper()
	k, err := rd.readKey()
	if err != nil {
		t.Fatalf("readKey -> error %v", err)
	}
	return k
}
