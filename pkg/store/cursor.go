package store

import (
	"errors"
	"strings"
)

// ErrEndOfHistory is returned by Cursor.Get when the cursor has moved past
// either end of the history.
var ErrEndOfHistory = errors.New("end of history")

// Cursor walks through entries that start with a given prefix, newest first.
// It is initially positioned past the newest entry, so the first Prev moves
// to the newest match. A Cursor iterates over a snapshot of the store;
// entries added after its creation are not visible to it.
type Cursor struct {
	cmds   []string
	prefix string
	index  int
}

// Cursor returns a cursor over entries with the given prefix.
func (s *Store) Cursor(prefix string) *Cursor {
	return &Cursor{s.cmds, prefix, len(s.cmds)}
}

// Prev moves the cursor to the previous matching entry. It is a no-op if the
// cursor is already before the oldest entry.
func (c *Cursor) Prev() {
	if c.index < 0 {
		return
	}
	for c.index--; c.index >= 0; c.index-- {
		if strings.HasPrefix(c.cmds[c.index], c.prefix) {
			return
		}
	}
}

// Next moves the cursor to the next matching entry. It is a no-op if the
// cursor is already past the newest entry.
func (c *Cursor) Next() {
	if c.index >= len(c.cmds) {
		return
	}
	for c.index++; c.index < len(c.cmds); c.index++ {
		if strings.HasPrefix(c.cmds[c.index], c.prefix) {
			return
		}
	}
}

// Get returns the entry under the cursor, or ErrEndOfHistory if the cursor is
// past either end.
func (c *Cursor) Get() (string, error) {
	if c.index < 0 || c.index >= len(c.cmds) {
		return "", ErrEndOfHistory
	}
	return c.cmds[c.index], nil
}
