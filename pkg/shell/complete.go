package shell

import (
	"go/scanner"
	"go/token"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goeval/goeval/pkg/eval"
	"github.com/goeval/goeval/pkg/store"
)

// completer suggests completions for the word under the cursor: engine
// commands after ":", and Go keywords, predeclared identifiers and
// identifiers seen in the history elsewhere.
type completer struct {
	hist *store.Store
}

func (c completer) Complete(code string, dot int) (int, []string) {
	start := wordStart(code, dot)
	seed := code[start:dot]
	if strings.HasPrefix(seed, ":") {
		return start, matching(eval.CommandNames(), seed)
	}
	if seed == "" {
		return -1, nil
	}
	var words []string
	words = append(words, goWords...)
	words = append(words, c.historyIdents()...)
	return start, matching(words, seed)
}

// wordStart returns the start of the word the dot is in or after. A word is
// a run of identifier runes, possibly containing the command prefix.
func wordStart(code string, dot int) int {
	start := dot
	for start > 0 {
		r, w := utf8.DecodeLastRuneInString(code[:start])
		if r != ':' && !isIdentRune(r) {
			break
		}
		start -= w
	}
	return start
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matching(words []string, seed string) []string {
	var cands []string
	seen := make(map[string]bool)
	for _, word := range words {
		if strings.HasPrefix(word, seed) && !seen[word] {
			seen[word] = true
			cands = append(cands, word)
		}
	}
	sort.Strings(cands)
	return cands
}

// historyIdents returns the identifiers that occur in history entries,
// oldest first.
func (c completer) historyIdents() []string {
	seen := make(map[string]bool)
	var idents []string
	for _, cmd := range c.hist.Cmds() {
		for _, ident := range identifiers(cmd) {
			if !seen[ident] {
				seen[ident] = true
				idents = append(idents, ident)
			}
		}
	}
	return idents
}

// identifiers returns the identifier tokens in code, which does not have to
// be valid Go.
func identifiers(code string) []string {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(code))
	var lexer scanner.Scanner
	lexer.Init(file, []byte(code), nil, 0)
	var idents []string
	for {
		_, tok, lit := lexer.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.IDENT {
			idents = append(idents, lit)
		}
	}
	return idents
}

// Go keywords and predeclared identifiers, always offered by the completer.
var goWords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",

	"append", "bool", "byte", "cap", "close", "complex", "complex64",
	"complex128", "copy", "delete", "error", "false", "float32", "float64",
	"imag", "int", "int8", "int16", "int32", "int64", "len", "make", "new",
	"nil", "panic", "print", "println", "real", "recover", "rune", "string",
	"true", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
}
