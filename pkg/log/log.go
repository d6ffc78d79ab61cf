package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level. The empty string
// means InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("log: unknown level %q", s)
}

// Format selects the output encoding.
type Format string

// Output formats
const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

// ParseFormat maps a case-insensitive format name to a Format. The empty
// string means TextFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("log: unknown format %q", s)
}

// Logger is the logging interface components accept. Implementations are
// safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that attaches fields to every message.
	With(fields ...Field) Logger

	// WithComponent tags messages with a component name.
	WithComponent(component string) Logger

	// SetLevel sets the minimum log level. Loggers derived with With share
	// the level with their parent.
	SetLevel(level Level)

	// GetLevel returns the current minimum log level.
	GetLevel() Level
}

// Option configures a logger built by NewLogger.
type Option func(*options)

type options struct {
	level  Level
	format Format
	out    io.Writer
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithFormat selects text or JSON output.
func WithFormat(format Format) Option {
	return func(o *options) { o.format = format }
}

// WithWriter directs output to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewLogger builds a Logger backed by log/slog. Defaults: InfoLevel, text
// format, stderr.
func NewLogger(opts ...Option) Logger {
	o := options{level: InfoLevel, format: TextFormat, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	lv := new(slog.LevelVar)
	lv.Set(toSlogLevel(o.level))
	hopts := &slog.HandlerOptions{Level: lv}
	var h slog.Handler
	if o.format == JSONFormat {
		h = slog.NewJSONHandler(o.out, hopts)
	} else {
		h = slog.NewTextHandler(o.out, hopts)
	}
	return &slogLogger{sl: slog.New(h), level: lv}
}

// slogLogger implements Logger over a slog.Logger. The level variable is
// shared with derived loggers so SetLevel acts on the whole pipeline.
type slogLogger struct {
	sl    *slog.Logger
	level *slog.LevelVar
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

func (l *slogLogger) log(level slog.Level, msg string, fields []Field) {
	l.sl.LogAttrs(context.Background(), level, msg, attrs(fields)...)
}

func (l *slogLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &slogLogger{sl: slog.New(l.sl.Handler().WithAttrs(attrs(fields))), level: l.level}
}

func (l *slogLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

func (l *slogLogger) SetLevel(level Level) { l.level.Set(toSlogLevel(level)) }

func (l *slogLogger) GetLevel() Level { return fromSlogLevel(l.level.Level()) }

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level <= slog.LevelDebug:
		return DebugLevel
	case level <= slog.LevelInfo:
		return InfoLevel
	case level <= slog.LevelWarn:
		return WarnLevel
	default:
		return ErrorLevel
	}
}
