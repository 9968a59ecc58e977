// Package logger provides the console logger used to report snapshot
// progress, per-file skips, and run summaries.
//
// Output is timestamped, level-filtered, and thread-safe. Color is
// enabled automatically when the writer is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

var levelNames = map[string]int{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// All output is prefixed with [HH:MM:SS] timestamps. Warnings render in
// yellow and errors in red when the writer is a TTY.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w. If w is nil,
// messages are silently discarded. level is one of trace, debug, info,
// warn, error (case-insensitive); empty or invalid values default to
// "info".
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       normalizeLevel(level),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether the writer is a TTY that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLevel maps a level name to its numeric value, defaulting to
// info for empty or unknown names.
func normalizeLevel(level string) int {
	if n, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return n
	}
	return levelInfo
}

func (cl *ConsoleLogger) log(level int, colorize func(format string, a ...interface{}) string, format string, args ...interface{}) {
	if cl.writer == nil || level < cl.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if cl.colorOutput && colorize != nil {
		msg = colorize("%s", msg)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s\n", time.Now().Format("15:04:05"), msg)
}

// Trace logs a message at trace level.
func (cl *ConsoleLogger) Trace(format string, args ...interface{}) {
	cl.log(levelTrace, nil, format, args...)
}

// Debug logs a message at debug level.
func (cl *ConsoleLogger) Debug(format string, args ...interface{}) {
	cl.log(levelDebug, nil, format, args...)
}

// Info logs a message at info level.
func (cl *ConsoleLogger) Info(format string, args ...interface{}) {
	cl.log(levelInfo, nil, format, args...)
}

// Warn logs a message at warn level, in yellow on terminals.
func (cl *ConsoleLogger) Warn(format string, args ...interface{}) {
	cl.log(levelWarn, color.YellowString, format, args...)
}

// Error logs a message at error level, in red on terminals.
func (cl *ConsoleLogger) Error(format string, args ...interface{}) {
	cl.log(levelError, color.RedString, format, args...)
}

// Success logs an info-level message with a green checkmark prefix.
func (cl *ConsoleLogger) Success(format string, args ...interface{}) {
	if cl.writer == nil || levelInfo < cl.level {
		return
	}

	check := "✓"
	msg := fmt.Sprintf(format, args...)
	if cl.colorOutput {
		check = color.GreenString(check)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s %s\n", time.Now().Format("15:04:05"), check, msg)
}
