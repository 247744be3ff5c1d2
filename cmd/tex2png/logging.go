package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger writing console output to w (stderr in
// production). Quiet keeps errors only; verbose enables debug events.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
