// Package logger provides the leveled console logger used for reporting
// recoverable scan and generation failures.
//
// Output goes to a writer with [HH:MM:SS] timestamps and is thread-safe.
// Color is enabled automatically when writing to a TTY.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

var levelNames = map[string]int{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

// ConsoleLogger writes leveled log lines to a writer with timestamps.
// If the writer is nil, messages are silently discarded.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// Valid levels: debug, info, warn, error (case-insensitive); empty or invalid
// levels default to "info". Color output is enabled only for os.Stdout and
// os.Stderr, honoring NO_COLOR via the color library.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

func normalizeLogLevel(level string) int {
	if l, ok := levelNames[strings.ToLower(level)]; ok {
		return l
	}
	return levelInfo
}

// isTerminal reports whether the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// The color library's NoColor flag already folds in TTY detection
		// and the NO_COLOR environment variable.
		return !color.NoColor
	}
	return false
}

// Debugf logs a debug-level message.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.log(levelDebug, "DEBUG", color.FgHiBlack, format, args...)
}

// Infof logs an info-level message.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.log(levelInfo, "INFO", color.FgCyan, format, args...)
}

// Warnf logs a warn-level message.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.log(levelWarn, "WARN", color.FgYellow, format, args...)
}

// Errorf logs an error-level message.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.log(levelError, "ERROR", color.FgRed, format, args...)
}

func (l *ConsoleLogger) log(level int, label string, attr color.Attribute, format string, args ...any) {
	if l.writer == nil || level < l.logLevel {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)

	if l.colorOutput {
		label = color.New(attr).Sprint(label)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s %s\n", timestamp, label, message)
}
