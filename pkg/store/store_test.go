package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goeval/goeval/pkg/must"
	"github.com/goeval/goeval/pkg/testutil"
)

func TestAdd(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("")
	s.Add("b")
	wantCmds(t, s, "a", "b")
	if s.Len() != 2 {
		t.Errorf("Len -> %d, want 2", s.Len())
	}
}

func TestSaveLoad_PreservesOrder(t *testing.T) {
	dir := testutil.InTempDir(t)
	path := filepath.Join(dir, "d", "history.txt")

	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	must.OK(s.Save(path))

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	wantCmds(t, loaded, "a", "b", "c")
}

func TestSaveLoad_MultiLineEntrySplits(t *testing.T) {
	dir := testutil.InTempDir(t)
	path := filepath.Join(dir, "history.txt")

	s := New()
	s.Add("x := 1\ny := 2")
	must.OK(s.Save(path))

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	wantCmds(t, loaded, "x := 1", "y := 2")
}

func TestLoad_MissingFile(t *testing.T) {
	dir := testutil.InTempDir(t)
	s, err := Load(filepath.Join(dir, "no-such-file"))
	if err != nil {
		t.Errorf("Load -> error %v, want nil", err)
	}
	wantCmds(t, s)
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := testutil.InTempDir(t)
	path := filepath.Join(dir, "history.txt")
	must.OK(os.Mkdir(path, 0700))

	s, err := Load(path)
	if err == nil {
		t.Errorf("Load -> nil error, want non-nil")
	}
	if s == nil {
		t.Fatalf("Load -> nil store")
	}
	wantCmds(t, s)
}

func TestCursor(t *testing.T) {
	s := New("+ 0", "- 1", "+ 2")
	testCursorIteration(t, s.Cursor("+"), []string{"+ 0", "+ 2"})
}

func TestCursor_SnapshotsStore(t *testing.T) {
	s := New("a")
	c := s.Cursor("")
	s.Add("b")
	c.Prev()
	if cmd, err := c.Get(); cmd != "a" || err != nil {
		t.Errorf("Get -> (%q, %v), want (%q, nil)", cmd, err, "a")
	}
}

func testCursorIteration(t *testing.T, c *Cursor, wantCmds []string) {
	t.Helper()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get -> error %v, want ErrEndOfHistory", err)
	}
	for i := len(wantCmds) - 1; i >= 0; i-- {
		c.Prev()
		if cmd, err := c.Get(); cmd != wantCmds[i] || err != nil {
			t.Errorf("Get -> (%q, %v), want (%q, nil)", cmd, err, wantCmds[i])
		}
	}
	c.Prev()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get -> error %v, want ErrEndOfHistory", err)
	}
	c.Prev()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get after double Prev -> error %v, want ErrEndOfHistory", err)
	}
	for i := 0; i < len(wantCmds); i++ {
		c.Next()
		if cmd, err := c.Get(); cmd != wantCmds[i] || err != nil {
			t.Errorf("Get -> (%q, %v), want (%q, nil)", cmd, err, wantCmds[i])
		}
	}
	c.Next()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get -> error %v, want ErrEndOfHistory", err)
	}
}

func wantCmds(t *testing.T, s *Store, want ...string) {
	t.Helper()
	cmds := s.Cmds()
	if len(want) == 0 && len(cmds) == 0 {
		return
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("Cmds -> %q, want %q", cmds, want)
	}
}
