package eval

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
)

// Snippets are parsed as the body of a synthetic function, so that plain
// statements and expressions need no ceremony. Inputs that only make sense at
// the top level, such as func and import declarations, get a whole-file parse
// as fallback.

type wrapMode int

const (
	wrapBody wrapMode = iota
	wrapTop
)

// bodyWrapLines is the number of synthetic lines inserted before the user's
// code when it is wrapped as a function body.
const bodyWrapLines = 2

type parsed struct {
	mode  wrapMode
	stmts []ast.Stmt // wrapBody
	decls []ast.Decl // wrapTop
}

func parseSnippet(code string) (*parsed, error) {
	fset := token.NewFileSet()
	f, bodyErr := parser.ParseFile(fset, "",
		"package main\nfunc _() {\n"+code+"\n}", 0)
	if bodyErr == nil {
		// The source starts with the synthetic func, so the first
		// declaration is always it.
		fd := f.Decls[0].(*ast.FuncDecl)
		return &parsed{mode: wrapBody, stmts: fd.Body.List}, nil
	}
	f, topErr := parser.ParseFile(fset, "", "package main\n"+code, 0)
	if topErr == nil {
		return &parsed{mode: wrapTop, decls: f.Decls}, nil
	}
	return nil, bodyErr
}

// exprResult reports whether the last statement of the snippet is a bare
// expression, whose value should be rendered.
func (p *parsed) exprResult() bool {
	if p.mode != wrapBody || len(p.stmts) == 0 {
		return false
	}
	_, ok := p.stmts[len(p.stmts)-1].(*ast.ExprStmt)
	return ok
}

// declaredNames returns the names the snippet declares, in source order.
// Blanks are skipped. Inner blocks are not descended into; the engine only
// tracks bindings that remain visible to later snippets.
func (p *parsed) declaredNames() []string {
	var names []string
	add := func(name string) {
		if name != "" && name != "_" {
			names = append(names, name)
		}
	}
	addGenDecl := func(d *ast.GenDecl) {
		if d.Tok != token.VAR && d.Tok != token.CONST {
			return
		}
		for _, spec := range d.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				for _, ident := range vs.Names {
					add(ident.Name)
				}
			}
		}
	}
	switch p.mode {
	case wrapBody:
		for _, stmt := range p.stmts {
			switch stmt := stmt.(type) {
			case *ast.AssignStmt:
				if stmt.Tok != token.DEFINE {
					continue
				}
				for _, lhs := range stmt.Lhs {
					if ident, ok := lhs.(*ast.Ident); ok {
						add(ident.Name)
					}
				}
			case *ast.DeclStmt:
				if d, ok := stmt.Decl.(*ast.GenDecl); ok {
					addGenDecl(d)
				}
			}
		}
	case wrapTop:
		for _, decl := range p.decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if decl.Recv == nil {
					add(decl.Name.Name)
				}
			case *ast.GenDecl:
				addGenDecl(decl)
			}
		}
	}
	return names
}

// recordVars looks up the names the snippet declared and remembers their
// types for :vars. Names the interpreter does not know are skipped.
func (eg *Engine) recordVars(p *parsed) {
	for _, name := range p.declaredNames() {
		v, err := eg.interp.Eval(name)
		if err != nil || !v.IsValid() {
			continue
		}
		eg.vars[name] = v.Type().String()
	}
}

// renderValue renders the value of an expression statement. The second return
// value is false when there is nothing to show.
func renderValue(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	if !v.CanInterface() {
		return v.String(), true
	}
	x := v.Interface()
	if s, ok := x.(string); ok {
		return strconv.Quote(s), true
	}
	return fmt.Sprint(x), true
}
