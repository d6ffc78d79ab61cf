package log

import (
	stdlog "log"
	"strings"
)

// Config is the declarative logging configuration carried by the service
// config file and environment.
type Config struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// ApplyConfig builds a Logger from cfg. Empty fields take the defaults
// (info, text); unknown names are an error.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		return NewLogger(), nil
	}
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return NewLogger(WithLevel(lvl), WithFormat(format)), nil
}

// ToStdLogger adapts l to a *log.Logger emitting at the given level, for
// libraries that only accept the standard logger (http.Server.ErrorLog).
func ToStdLogger(l Logger, level Level) *stdlog.Logger {
	return stdlog.New(&stdWriter{l: l, level: level}, "", 0)
}

// RedirectStdLog routes the stdlib default logger through l at InfoLevel, so
// libraries logging via the global log package land in the structured stream.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(&stdWriter{l: l, level: InfoLevel})
}

type stdWriter struct {
	l     Logger
	level Level
}

func (w *stdWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch w.level {
	case DebugLevel:
		w.l.Debug(msg)
	case WarnLevel:
		w.l.Warn(msg)
	case ErrorLevel:
		w.l.Error(msg)
	default:
		w.l.Info(msg)
	}
	return len(p), nil
}
