package serverrun

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cfgpkg "github.com/rzbill/uniq/internal/config"
	"github.com/rzbill/uniq/internal/runtime"
	httpserver "github.com/rzbill/uniq/internal/server/http"
	logpkg "github.com/rzbill/uniq/pkg/log"
)

// Options carry the serve flags. Zero values defer to the config file,
// the UNIQ_* environment, and built-in defaults, in that order.
type Options struct {
	HTTPAddr   string
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// resolveConfig builds the effective config: defaults, then the config
// file, then the UNIQ_* environment, then explicit options on top.
func resolveConfig(opts Options) (cfgpkg.Config, string, error) {
	path := opts.ConfigPath
	if path == "" {
		path = cfgpkg.DefaultConfigPath()
	}
	cfg, err := cfgpkg.Load(path)
	if err != nil {
		return cfgpkg.Config{}, path, err
	}
	cfgpkg.FromEnv(&cfg)
	if opts.HTTPAddr != "" {
		cfg.HTTPAddr = opts.HTTPAddr
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	// MaxBatch at or below zero would reject every mint request.
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = cfgpkg.Default().MaxBatch
	}
	return cfg, path, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled, a
// termination signal arrives, or the server fails.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context. We
	// layer a local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgpkg.LoadEnvFiles()
	cfg, cfgPath, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	procLogger, err := logpkg.ApplyConfig(&cfg.Log)
	if err != nil {
		// Fallback to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.Log.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl))
	}

	// Redirect stdlib logs (e.g., http.Server internals) to our logger
	logpkg.RedirectStdLog(procLogger)

	procLogger.Info("Starting uniq server",
		logpkg.Str("http", cfg.HTTPAddr),
		logpkg.Str("config", cfgPath),
		logpkg.Str("level", cfg.Log.Level),
		logpkg.Str("format", cfg.Log.Format),
		logpkg.Int("max_batch", cfg.MaxBatch),
	)

	rt := runtime.New(runtime.Options{Config: cfg, Logger: procLogger})
	hsrv := httpserver.New(rt, procLogger)

	errCh := make(chan error, 1)
	go func() { errCh <- hsrv.ListenAndServe(sctx, cfg.HTTPAddr) }()

	// ListenAndServe drains on ctx cancellation, so a single receive
	// covers both the failure and the graceful shutdown path.
	if err := <-errCh; err != nil && sctx.Err() == nil {
		return fmt.Errorf("http server: %w", err)
	}
	hsrv.Close()
	procLogger.Info("uniq server stopped")
	return nil
}
