package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a human readable logger. Debug messages are only written when
// verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
