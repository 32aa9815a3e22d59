package shell

import (
	"testing"

	"github.com/goeval/goeval/pkg/store"
	"github.com/goeval/goeval/pkg/tt"
)

func TestHint(t *testing.T) {
	h := hinter{store.New(
		"func add(a, b int) int {\n\treturn a + b\n}", "x := 40", "x + 2")}
	tt.Test(t, h.Hint,
		// The most recent matching entry wins.
		Args("x").Rets(" + 2"),
		Args("x ").Rets("+ 2"),
		Args("x := ").Rets("40"),
		// An exact entry leaves nothing to hint.
		Args("x + 2").Rets(""),
		// Multi-line entries hint only their first line.
		Args("func add").Rets("(a, b int) int {"),
		Args("zz").Rets(""),
	)

	tt.Test(t, hinter{store.New()}.Hint,
		Args("x").Rets(""),
	)
}
