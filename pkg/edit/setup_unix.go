//go:build unix

package edit

import (
	"fmt"
	"os"

	"github.com/goeval/goeval/pkg/sys/eunix"
)

// setup puts the terminal in raw mode and returns a function to restore the
// saved terminal attributes. On Unix all file descriptors pointing to the
// same terminal are equivalent, so only the input file is used.
func setup(in *os.File) (func() error, error) {
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %s", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetIExten(false)
	term.SetEcho(false)
	// Leave interrupt handling to the editor. Ctrl-C arrives as an ordinary
	// byte instead of raising SIGINT.
	term.SetISig(false)
	term.SetVMin(1)
	term.SetVTime(0)

	// Enforcing crnl translation on readline. Assuming user won't set
	// inlcr or -onlcr, otherwise we have to hardcode all of them here.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %s", err)
	}

	restore := func() error { return savedTermios.ApplyToFd(fd) }
	return restore, nil
}
