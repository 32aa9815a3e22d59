// Package shell implements the interactive shell of goeval. It reads units
// of Go code from the terminal, hands them to the execution engine, and
// renders what comes back.
package shell

import (
	"os"

	"github.com/goeval/goeval/pkg/logutil"
	"github.com/goeval/goeval/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("goeval accepts no arguments; type code at the prompt instead")
	}
	restoreSignals := initSignals(fds[2])
	defer restoreSignals()
	return Interact(fds, &InteractConfig{
		DisableReadline: f.DisableReadline,
		IDEMode:         f.IDEMode,
		Opt:             f.Opt,
	})
}
