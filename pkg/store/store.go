// Package store keeps the history of inputs accepted by the shell, both in
// memory and, between sessions, in a plain text file.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is an in-memory, append-only record of accepted inputs.
type Store struct {
	cmds []string
}

// New returns a Store seeded with the given entries.
func New(texts ...string) *Store {
	return &Store{append([]string(nil), texts...)}
}

// Load reads the history file at path, one entry per line. A missing file is
// not an error and results in an empty store. On any other read error the
// returned store is empty but still usable; the error is only good for
// logging.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return New(), err
	}
	s := New()
	for _, line := range strings.Split(string(data), "\n") {
		s.Add(strings.TrimSuffix(line, "\r"))
	}
	return s, nil
}

// Add appends an entry. Empty entries are ignored.
func (s *Store) Add(text string) {
	if text == "" {
		return
	}
	s.cmds = append(s.cmds, text)
}

// Cmds returns a copy of all entries, oldest first.
func (s *Store) Cmds() []string {
	return append([]string(nil), s.cmds...)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.cmds) }

// Save writes all entries to the file at path, one per line, creating parent
// directories as needed. Entries containing newlines are written verbatim and
// load back as multiple entries.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	var sb strings.Builder
	for _, cmd := range s.cmds {
		sb.WriteString(cmd)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0600)
}
