// Package highlight provides a Go syntax highlighter for the line editor.
package highlight

import (
	_ "embed"
	"fmt"
	"go/scanner"
	"go/token"
	"sync"

	"github.com/goeval/goeval/pkg/diag"
	"github.com/goeval/goeval/pkg/ui"
	"gopkg.in/yaml.v3"
)

// Dataset of grammars and themes, embedded at build time. A grammar assigns a
// theme role to each token class of a language; a theme assigns a styling to
// each role.
//
//go:embed dataset.yaml
var datasetYAML []byte

type dataset struct {
	Grammars map[string]grammar           `yaml:"grammars"`
	Themes   map[string]map[string]string `yaml:"themes"`
}

type grammar struct {
	Classes map[string]string `yaml:"classes"`
}

var (
	datasetOnce sync.Once
	theDataset  dataset
	datasetErr  error
)

func loadDataset() (*dataset, error) {
	datasetOnce.Do(func() {
		datasetErr = yaml.Unmarshal(datasetYAML, &theDataset)
	})
	if datasetErr != nil {
		return nil, datasetErr
	}
	return &theDataset, nil
}

// Highlighter is a Go syntax highlighter with a fixed grammar and theme.
type Highlighter struct {
	stylings map[string]ui.Styling
	hint     ui.Styling
}

// NewHighlighter returns a highlighter using the named grammar and theme from
// the embedded dataset. It returns an error if either is missing, or if the
// theme contains a styling that does not parse.
func NewHighlighter(grammarName, themeName string) (*Highlighter, error) {
	ds, err := loadDataset()
	if err != nil {
		return nil, err
	}
	g, ok := ds.Grammars[grammarName]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q", grammarName)
	}
	theme, ok := ds.Themes[themeName]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", themeName)
	}
	hintSpec, ok := theme["hint"]
	if !ok {
		return nil, fmt.Errorf("theme %q defines no hint styling", themeName)
	}
	hint := ui.ParseStyling(hintSpec)
	if hint == nil {
		return nil, fmt.Errorf("invalid styling %q in theme %q", hintSpec, themeName)
	}
	stylings := make(map[string]ui.Styling)
	for class, role := range g.Classes {
		spec, ok := theme[role]
		if !ok {
			continue
		}
		styling := ui.ParseStyling(spec)
		if styling == nil {
			return nil, fmt.Errorf("invalid styling %q in theme %q", spec, themeName)
		}
		stylings[class] = styling
	}
	return &Highlighter{stylings, hint}, nil
}

// Get returns the highlighted code.
func (hl *Highlighter) Get(code string) ui.Text {
	lexer, posBase := lex(code)
	var regions []ui.StylingRegion
	for {
		pos, tok, lit := lexer.Scan()
		if tok == token.EOF {
			break
		}
		styling := hl.stylings[classOfToken(tok)]
		if styling == nil {
			continue
		}
		from := int(pos) - posBase
		// lit is "" for operator tokens like "{" and "+". They are never
		// styled now; if they get styled one day, use tok.String() instead of
		// lit for them.
		to := from + len(lit)
		regions = append(regions, ui.StylingRegion{
			Ranging: diag.Ranging{From: from, To: to}, Styling: styling})
	}
	return ui.StyleRegions(code, regions)
}

// HintStyling returns the styling the theme prescribes for inline hints.
func (hl *Highlighter) HintStyling() ui.Styling { return hl.hint }

// The scanner is sufficient for highlighting, and unlike go/parser it copes
// with snippets that are not a whole file or a single expression.
func lex(code string) (lexer scanner.Scanner, posBase int) {
	fset := token.NewFileSet()
	file := fset.AddFile("input.go", -1, len(code))
	lexer.Init(file, []byte(code), nil, scanner.ScanComments)
	return lexer, file.Base()
}

func classOfToken(tok token.Token) string {
	switch tok {
	case token.ILLEGAL:
		return "illegal"
	case token.COMMENT:
		return "comment"
	case token.CHAR:
		return "char"
	case token.STRING:
		return "string"
	case token.INT, token.FLOAT, token.IMAG:
		return "number"
	default:
		if tok.IsKeyword() {
			return "keyword"
		}
		return ""
	}
}
