package diag

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostic is one structured diagnostic produced for a submitted snippet.
type Diagnostic struct {
	// UserCode indicates that the diagnostic points into code the user typed,
	// as opposed to generated wrapper code around it.
	UserCode bool
	// Spanned holds labeled spans, in the order they should be shown.
	Spanned []SpannedMessage
	// Message is the overall message.
	Message string
	// Help holds additional help texts.
	Help []string
	// Hint is an optional extra hint, shown last.
	Hint string
	// Rendered is a raw pre-rendered fallback. It is what gets shown when the
	// diagnostic does not point into user code, since carets into the user's
	// input would be misleading then.
	Rendered string
}

// SpannedMessage is a label attached to a column span within a snippet. Span
// columns are 0-based and relative to the start of the combined snippet. A
// nil Span means the error straddles user code and generated code; only the
// label is shown then.
type SpannedMessage struct {
	Label string
	Span  *Ranging
}

const generatedCodeNotice = "A compilation error was found in code we generated.\n" +
	"Ideally this shouldn't happen. Type :last_error_json to see details."

// Show renders the diagnostic for a terminal. promptWidth is the display
// width of the prompt, added to span columns so that caret runs line up under
// the echoed input.
func (d *Diagnostic) Show(promptWidth int) string {
	if !d.UserCode {
		return generatedCodeNotice + "\n" + strings.TrimSuffix(d.Rendered, "\n")
	}
	var lines []string
	for _, sm := range d.Spanned {
		lines = append(lines, sm.show(promptWidth))
	}
	if d.Message != "" {
		lines = append(lines, "\033[31;1m"+d.Message+"\033[m")
	}
	for _, help := range d.Help {
		lines = append(lines, "\033[1mhelp:\033[m "+help)
	}
	if d.Hint != "" {
		lines = append(lines, d.Hint)
	}
	return strings.Join(lines, "\n")
}

func (sm SpannedMessage) show(promptWidth int) string {
	label := "\033[94m" + sm.Label + "\033[m"
	if sm.Span == nil {
		return label
	}
	// Malformed spans degrade to an empty caret run rather than a panic.
	pad := sm.Span.From + promptWidth
	if pad < 0 {
		pad = 0
	}
	carets := sm.Span.To - sm.Span.From
	if carets < 0 {
		carets = 0
	}
	line := strings.Repeat(" ", pad) + "\033[91m" + strings.Repeat("^", carets) + "\033[m"
	if sm.Label == "" {
		return line
	}
	return line + " " + label
}

// ShowDiagnostics renders each diagnostic to w with a trailing newline.
func ShowDiagnostics(w io.Writer, diags []*Diagnostic, promptWidth int) {
	for _, d := range diags {
		fmt.Fprintln(w, d.Show(promptWidth))
	}
}
