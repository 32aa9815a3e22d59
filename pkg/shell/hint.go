package shell

import (
	"strings"

	"github.com/goeval/goeval/pkg/store"
)

// hinter hints with the most recent history entry that starts with what has
// been typed so far.
type hinter struct {
	hist *store.Store
}

func (h hinter) Hint(code string) string {
	c := h.hist.Cursor(code)
	c.Prev()
	entry, err := c.Get()
	if err != nil || entry == code {
		return ""
	}
	rest := entry[len(code):]
	// Multi-line entries hint only up to the end of the current line.
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
