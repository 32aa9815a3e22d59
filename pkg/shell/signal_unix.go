//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goeval/goeval/pkg/sys"
)

// initSignals starts the signal handler of the session and returns a
// function to stop it.
//
// Most signals are only logged. In particular SIGINT, so that Ctrl-C during
// an engine call does not kill the process; the line editor sees Ctrl-C as a
// byte rather than a signal, since it puts the terminal in raw mode.
func initSignals(stderr io.Writer) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGURG {
				// Used by the Go runtime for preemption; not interesting.
				continue
			}
			logger.Println("signal", sig)
			handleSignal(sig, stderr)
		}
	}()
	return func() {
		// After Stop returns the channel receives no more signals, so the
		// handler goroutine can be released by closing it.
		signal.Stop(sigCh)
		close(sigCh)
	}
}

func handleSignal(sig os.Signal, stderr io.Writer) {
	switch sig {
	case syscall.SIGHUP, syscall.SIGTERM:
		os.Exit(0)
	case syscall.SIGUSR1:
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
