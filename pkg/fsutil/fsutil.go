// Package fsutil provides filesystem-related utilities.
package fsutil

import (
	"os"

	"github.com/goeval/goeval/pkg/env"
)

// ConfigHome returns the base directory for per-user configuration files. An
// explicit XDG_CONFIG_HOME takes precedence on all platforms.
func ConfigHome() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return dir, nil
	}
	return os.UserConfigDir()
}
