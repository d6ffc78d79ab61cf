// Package log provides the structured logging facade used across uniq.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. It is backed by the standard
// library slog; text and JSON handlers are selected at construction and the
// level can be changed at runtime.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormat(log.TextFormat),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("server started", log.Str("addr", ":8080"))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config, typically the
// logging block of the service configuration.
//
// # Interop
//
// To integrate with libraries expecting *log.Logger, use ToStdLogger or
// RedirectStdLog; most code should stay against this facade.
package log
