package shell

import (
	"go/parser"
	"go/token"
	"strings"

	"github.com/goeval/goeval/pkg/edit"
)

// validator decides whether Enter submits the buffer or continues it on a
// new line. Engine commands and blank input are always complete; anything
// else is complete once it parses as Go.
type validator struct{}

func (validator) Validate(code string) edit.Validation {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.HasPrefix(trimmed, ":") {
		return edit.Complete
	}
	if parses(code) {
		return edit.Complete
	}
	return edit.Incomplete
}

// parses reports whether code is syntactically complete Go, either as a
// sequence of statements or as top-level declarations. Parse errors all mean
// "keep reading"; the engine reports the real error once the unit is
// submitted.
func parses(code string) bool {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", "package main\nfunc _() {\n"+code+"\n}", 0)
	if err == nil {
		return true
	}
	_, err = parser.ParseFile(fset, "", "package main\n"+code, 0)
	return err == nil
}
