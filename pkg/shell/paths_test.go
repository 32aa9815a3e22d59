package shell

import (
	"path/filepath"
	"testing"

	"github.com/goeval/goeval/pkg/env"
	"github.com/goeval/goeval/pkg/testutil"
)

func TestHistoryPath(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg/config/home")
	path, err := historyPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg/config/home", "goeval", "history.txt"); path != want {
		t.Errorf("got path %q, want %q", path, want)
	}
}
