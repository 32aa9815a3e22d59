// Package logutil provides a shared log output destination for other
// packages. Loggers default to discarding everything; the -log flag reroutes
// all of them to a file.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. The prefix is conventionally
// "[package] ".
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the given writer. If the current destination is a file opened by
// SetOutputFile, it is closed.
func SetOutput(newOut io.Writer) {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file, after truncating it. If the current destination is a
// file opened by an earlier SetOutputFile, it is closed. An empty name is
// equivalent to SetOutput(io.Discard).
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %v", fname, err)
	}
	if outFile != nil {
		outFile.Close()
	}
	out, outFile = file, file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}
