// ABOUTME: Leveled logging for verbose mode; frames own stdout so logs go to stderr
// ABOUTME: A single atomic level gates Debug and Warn; Error always emits

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Levels the gate understands, in slog terms.
const (
	LevelDebug = slog.LevelDebug
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	// out is swapped in tests; stderr otherwise.
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelWarn))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

func enabled(l slog.Level) bool {
	return slog.Level(level.Load()) <= l
}

// Debug logs a debug message when verbose mode is on.
func Debug(format string, args ...any) {
	if !enabled(LevelDebug) {
		return
	}
	fmt.Fprintf(out, "[DEBUG] "+format+"\n", args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if !enabled(LevelWarn) {
		return
	}
	fmt.Fprintf(out, "[WARN] "+format+"\n", args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	fmt.Fprintf(out, "[ERROR] "+format+"\n", args...)
}
