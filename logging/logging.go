// Package logging wraps log/slog with rotating file output, the way the
// reference pack's own logging package does, for use by every package below
// cmd/bapsolve.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper so callers hold one concrete type across the
// module instead of threading *slog.Logger directly.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// Options configures where and how verbosely a Logger writes.
type Options struct {
	// Dir is the directory log files are rotated into. Defaults to
	// "bapsolve-logs" under the working directory when empty.
	Dir string
	// Level is one of "debug", "info", "warn", "error". Defaults to "info".
	Level string
	// Console, when true, also writes to stderr in addition to the rotated file.
	Console bool
}

// New builds a Logger rotating into Options.Dir via lumberjack.
func New(opt Options) *Logger {
	dir := opt.Dir
	if dir == "" {
		dir = "bapsolve-logs"
	}

	w := &lumberjack.Logger{
		Filename: filepath.Join(dir, "bapsolve.log"),
		MaxSize:  64, // MB
		MaxAge:   14,
		Compress: true,
	}

	lvl := slog.LevelInfo
	switch opt.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "":
	default:
		fmt.Fprintf(os.Stderr, "logging: invalid level %q, defaulting to info\n", opt.Level)
	}

	var dest io.Writer = w
	if opt.Console {
		dest = io.MultiWriter(w, os.Stderr)
	}
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{Level: lvl})

	return &Logger{
		Logger:  slog.New(handler),
		LogFile: w.Filename,
		Start:   time.Now(),
	}
}

// WithRun returns a child logger tagged with run_id, for a single solve
// invocation's worth of log lines.
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("run_id", runID)), LogFile: l.LogFile, Start: l.Start}
}
