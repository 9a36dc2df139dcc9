package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a console-pretty zerolog logger at debug level
// when verbose is set, and a disabled logger otherwise. Grounded on
// the pack's own solver-tracing use of zerolog, gated by
// logger.GetLevel(), so a disabled logger costs nothing on the hot
// solve path.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
