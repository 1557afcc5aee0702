package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"slsbundler.dev/cli/internal/core/ports"
)

// Level orders log output by severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ConsoleLogger writes prefixed, coloured lines to a writer (stderr by
// default, stdout is reserved for command output)
type ConsoleLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// NewConsoleLogger creates a logger on stderr that only reports warnings and
// errors until the resolver raises its verbosity
func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, LevelWarn)
}

// NewConsoleLoggerWithWriter creates a logger on w at the given level
func NewConsoleLoggerWithWriter(w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{out: w, level: level}
}

// SetLevel changes the minimum level that is written
func (l *ConsoleLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *ConsoleLogger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetDebug implements ports.Logger
func (l *ConsoleLogger) SetDebug(enabled bool) {
	if enabled {
		l.SetLevel(LevelDebug)
	} else {
		l.SetLevel(LevelWarn)
	}
}

// Debug logs a progress message
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "Serverless Bundler: ", messageStyle, format, args...)
}

// Info logs bundler output on its own line under the prefix
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "Serverless Bundler:\n", infoStyle, format, args...)
}

// Warn logs a recoverable problem
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, "Serverless Bundler Warning: ", messageStyle, format, args...)
}

// Error logs a failure
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(LevelError, "Serverless Bundler Error:\n", errorStyle, format, args...)
}

func (l *ConsoleLogger) write(level Level, title string, style lipgloss.Style, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s%s\n", title, style.Render(msg))
}

var _ ports.Logger = (*ConsoleLogger)(nil)
