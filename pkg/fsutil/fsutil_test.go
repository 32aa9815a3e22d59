package fsutil

import (
	"os"
	"testing"

	"github.com/goeval/goeval/pkg/env"
	"github.com/goeval/goeval/pkg/testutil"
)

func TestConfigHome_PrefersXDGConfigHome(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg/config/home")

	dir, err := ConfigHome()
	if dir != "/xdg/config/home" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", dir, err, "/xdg/config/home")
	}
}

func TestConfigHome_FallsBackToUserConfigDir(t *testing.T) {
	testutil.Unsetenv(t, env.XDG_CONFIG_HOME)

	want, wantErr := os.UserConfigDir()
	dir, err := ConfigHome()
	if dir != want || err != wantErr {
		t.Errorf("got (%q, %v), want (%q, %v)", dir, err, want, wantErr)
	}
}
