// Package logging wraps log/slog with a process-wide logger, rotated file
// output and timing helpers.
package logging

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is an slog.Logger that knows whether it writes anywhere
type Logger struct {
	*slog.Logger
	enabled bool
}

// LogFormat selects the slog handler
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config describes where and how logs are written. FilePath wins over
// Output; with both empty logging is disabled.
type Config struct {
	FilePath string
	Output   io.Writer

	Level  slog.Level
	Format LogFormat

	// Rotation settings, used with FilePath only
	MaxSizeMB  int
	MaxBackups int
}

var (
	discard = &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	current atomic.Pointer[Logger]

	// fileMu guards the open log file
	fileMu sync.Mutex
	file   *lumberjack.Logger
)

// Init replaces the process logger. Any previously opened log file is closed.
func Init(config Config) error {
	if err := Shutdown(); err != nil {
		return err
	}

	w := config.Output
	if config.FilePath != "" {
		fileMu.Lock()
		file = &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			Compress:   true,
		}
		w = file
		fileMu.Unlock()
	}
	if w == nil {
		return nil
	}

	current.Store(&Logger{
		Logger:  slog.New(newHandler(w, config.Format, config.Level)),
		enabled: true,
	})
	return nil
}

func newHandler(w io.Writer, format LogFormat, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Get returns the process logger, or a discarding one before Init
func Get() *Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}

// With returns a logger that adds args to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), enabled: l.enabled}
}

// IsEnabled reports whether records go anywhere
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Component returns the process logger tagged with a component name
func Component(name string) *Logger {
	return Get().With("component", name)
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the process logger writes anywhere
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else
// is info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseFormat returns FormatJSON for "json" and FormatText otherwise
func ParseFormat(format string) LogFormat {
	if LogFormat(format) == FormatJSON {
		return FormatJSON
	}
	return FormatText
}

// Shutdown disables logging and closes the log file, if any
func Shutdown() error {
	current.Store(nil)

	fileMu.Lock()
	defer fileMu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
