package testutil

import (
	"os"
	"path/filepath"

	"github.com/goeval/goeval/pkg/must"
)

// TempDir creates a temporary directory for the test to use. It is removed
// after the test finishes. Symlinks in the path are resolved, so that the
// return value may be compared against the output of os.Getwd after a chdir.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "goeval-test")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			panic(err)
		}
	})
	return dir
}

// Chdir changes into the given directory, and restores the original working
// directory after the test finishes. It returns the directory.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() {
		must.OK(os.Chdir(oldWd))
	})
	return dir
}

// InTempDir is TempDir followed by Chdir.
func InTempDir(c Cleanuper) string {
	return Chdir(c, TempDir(c))
}
