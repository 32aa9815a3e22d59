package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/scanner"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goeval/goeval/pkg/diag"
)

// CompileError is returned by Execute when the snippet fails to parse or
// compile, one diagnostic per reported error. Runtime failures are ordinary
// errors, not CompileErrors.
type CompileError struct {
	Diags []*diag.Diagnostic
}

func (e *CompileError) Error() string {
	if len(e.Diags) == 0 {
		return "compilation failed"
	}
	return e.Diags[0].Message
}

// compileError records diags as the last compile error, for :last_error_json,
// and returns them wrapped.
func (eg *Engine) compileError(diags []*diag.Diagnostic) error {
	ce := &CompileError{Diags: diags}
	eg.lastError = ce
	return ce
}

// diagnosticsFromParse converts a go/parser error on the wrapped snippet into
// diagnostics, rebasing positions from the synthetic wrapping onto the user's
// code.
func diagnosticsFromParse(err error, code string) []*diag.Diagnostic {
	var list scanner.ErrorList
	if !errors.As(err, &list) {
		return []*diag.Diagnostic{rawDiagnostic(err.Error())}
	}
	diags := make([]*diag.Diagnostic, len(list))
	for i, e := range list {
		diags[i] = positionedDiagnostic(
			e.Pos.Line-bodyWrapLines, e.Pos.Column, e.Msg, e.Error(), code)
	}
	return diags
}

// diagnosticsFromMessage converts an interpreter error, conventionally of the
// form "line:col: message", into a diagnostic. The interpreter numbers lines
// from the start of the snippet, so lines need no rebasing.
func diagnosticsFromMessage(msg, code string) []*diag.Diagnostic {
	if line, col, rest, ok := parsePos(msg); ok {
		return []*diag.Diagnostic{positionedDiagnostic(line, col, rest, msg, code)}
	}
	return []*diag.Diagnostic{rawDiagnostic(msg)}
}

// parsePos splits a "line:col: message" prefix, tolerating a leading source
// name as in "_.go:line:col: message".
func parsePos(msg string) (int, int, string, bool) {
	if line, col, rest, ok := cutPos(msg); ok {
		return line, col, rest, true
	}
	if _, tail, found := strings.Cut(msg, ":"); found {
		return cutPos(tail)
	}
	return 0, 0, "", false
}

func cutPos(msg string) (int, int, string, bool) {
	lineStr, tail, found := strings.Cut(msg, ":")
	if !found {
		return 0, 0, "", false
	}
	colStr, rest, found := strings.Cut(tail, ":")
	if !found {
		return 0, 0, "", false
	}
	line, errLine := strconv.Atoi(lineStr)
	col, errCol := strconv.Atoi(colStr)
	if errLine != nil || errCol != nil {
		return 0, 0, "", false
	}
	return line, col, strings.TrimPrefix(rest, " "), true
}

// positionedDiagnostic builds a user-code diagnostic for an error at the
// given 1-based line and column of the snippet. Positions that do not land
// inside the snippet produce a non-user-code diagnostic instead, since carets
// under the echoed input would be misleading then.
func positionedDiagnostic(line, col int, msg, raw, code string) *diag.Diagnostic {
	lines := strings.Split(code, "\n")
	if line == len(lines)+1 {
		// An error on the synthetic closing line means the snippet ended too
		// early. Point at the end of the last line instead.
		line = len(lines)
		col = len(lines[line-1]) + 1
	}
	if line < 1 || line > len(lines) {
		return rawDiagnostic(raw)
	}
	text := lines[line-1]
	start := col - 1
	end := start
	var help []string
	if name, ok := strings.CutPrefix(msg, "undefined: "); ok && name != "" {
		// The interpreter compiles a wrapped form of the snippet, and its
		// column on the first line may point into the wrapper. The
		// identifier itself is authoritative; span its first occurrence.
		if idx := indexIdent(text, name); idx >= 0 {
			start, end = idx, idx+len(name)
		}
		help = append(help, fmt.Sprintf(
			"declare %s before using it, for example: %s := ...", name, name))
	}
	if start < 0 || start > len(text) {
		return rawDiagnostic(raw)
	}
	if end == start {
		end = start + 1
	}
	return &diag.Diagnostic{
		UserCode: true,
		Spanned:  []diag.SpannedMessage{{Span: &diag.Ranging{From: start, To: end}}},
		Message:  msg,
		Help:     help,
		Rendered: raw,
	}
}

// rawDiagnostic wraps an error message that cannot be anchored to a position
// in the user's code.
func rawDiagnostic(msg string) *diag.Diagnostic {
	return &diag.Diagnostic{Message: msg, Rendered: msg}
}

// indexIdent returns the byte index of the first occurrence of name in s that
// is a whole identifier, or -1.
func indexIdent(s, name string) int {
	for from := 0; from+len(name) <= len(s); {
		idx := strings.Index(s[from:], name)
		if idx < 0 {
			return -1
		}
		idx += from
		if !identRuneBefore(s, idx) && !identRuneAfter(s, idx+len(name)) {
			return idx
		}
		from = idx + 1
	}
	return -1
}

func identRuneBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isIdentRune(r)
}

func identRuneAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isIdentRune(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type diagnosticJSON struct {
	Message  string     `json:"message"`
	Spans    []spanJSON `json:"spans"`
	Help     []string   `json:"help,omitempty"`
	Rendered string     `json:"rendered,omitempty"`
}

type spanJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label,omitempty"`
}

// marshalDiagnostics renders diagnostics as JSON for :last_error_json.
func marshalDiagnostics(diags []*diag.Diagnostic) ([]byte, error) {
	out := make([]diagnosticJSON, len(diags))
	for i, d := range diags {
		dj := diagnosticJSON{
			Message:  d.Message,
			Spans:    []spanJSON{},
			Help:     d.Help,
			Rendered: d.Rendered,
		}
		for _, sm := range d.Spanned {
			if sm.Span == nil {
				continue
			}
			dj.Spans = append(dj.Spans,
				spanJSON{Start: sm.Span.From, End: sm.Span.To, Label: sm.Label})
		}
		out[i] = dj
	}
	return json.Marshal(out)
}
