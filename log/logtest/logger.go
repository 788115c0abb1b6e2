// Package logtest has loggers for tests of components that log game events.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/shelfie/log"
)

// DiscardLogger ignores every message.  It is used by tests that do not check the log.
var DiscardLogger = new(discardLogger)

// discardLogger drops messages.
type discardLogger struct{}

// DiscardLogger can be given to sessions as their log.
var _ log.Logger = DiscardLogger

// Printf drops the message.
func (discardLogger) Printf(format string, v ...interface{}) {
	// messages are not checked
}

// Logger records the messages a session logs so tests can check them.
// The zero value is ready to use.
type Logger struct {
	mu       sync.Mutex
	messages []string
}

// Logger can be given to sessions as their log.
var _ log.Logger = NewLogger()

// NewLogger creates a Logger with no messages.
func NewLogger() *Logger {
	return new(Logger)
}

// Printf records the formatted message.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, v...))
}

// Messages returns a copy of the recorded messages, in the order they were logged.
func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.messages...)
}

// String returns the recorded messages, each followed by a newline.
func (l *Logger) String() string {
	var sb strings.Builder
	for _, m := range l.Messages() {
		sb.WriteString(m)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Empty determines if no messages have been recorded.
func (l *Logger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages) == 0
}

// Reset clears the recorded messages.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}
