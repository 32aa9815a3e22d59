package shell

import (
	"path/filepath"

	"github.com/goeval/goeval/pkg/fsutil"
)

// historyPath returns the path of the history file.
func historyPath() (string, error) {
	dir, err := fsutil.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "goeval", "history.txt"), nil
}
