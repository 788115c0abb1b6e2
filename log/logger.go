// Package log provides an abstraction over structured loggers.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is an interface over the logger used by the game components so most places do not depend on a specific logging library.
type Logger interface {
	// Printf writes the formatted string with values to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}

// ZeroLogger is a Logger that writes leveled events with zerolog.
type ZeroLogger struct {
	zl zerolog.Logger
}

// ZeroLogger implements the Logger interface.
var _ Logger = new(ZeroLogger)

// New creates a ZeroLogger that writes to w.
// Events are written as JSON lines unless console is set, in which case they are formatted for people to read.
func New(w io.Writer, console bool) *ZeroLogger {
	if console {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.TimeOnly,
		}
	}
	l := ZeroLogger{
		zl: zerolog.New(w).With().Timestamp().Logger(),
	}
	return &l
}

// With creates a child logger that adds the key and value to each event.
func (l *ZeroLogger) With(key, value string) *ZeroLogger {
	l2 := ZeroLogger{
		zl: l.zl.With().Str(key, value).Logger(),
	}
	return &l2
}

// Printf writes the formatted message as an info event.
func (l *ZeroLogger) Printf(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Errorf writes the formatted message as an error event.
func (l *ZeroLogger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}
