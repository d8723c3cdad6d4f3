package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// Log output formats.
const (
	LogFormatHuman = "human"
	LogFormatJSON  = "json"
)

// newLogger builds the command logger. Human output goes through zerolog's console
// writer, colored only when w is a terminal.
func newLogger(w io.Writer, globals *Globals) zerolog.Logger {
	level := zerolog.InfoLevel
	if globals.Debug {
		level = zerolog.DebugLevel
	}

	out := w
	if globals.LogFormat != LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: !isTerminalWriter(w)}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
