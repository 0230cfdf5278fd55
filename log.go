package main

import (
	"os"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

// newLogger returns a logger writing to stderr if verbose is set,
// and one that discards everything otherwise.
func newLogger(verbose bool) slog.Logger {
	if !verbose {
		return logger.NewNopLogger()
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter: os.Stderr,
	})
}
