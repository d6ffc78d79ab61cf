package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	clientcmd "github.com/rzbill/uniq/internal/cmd/client"
	serverrun "github.com/rzbill/uniq/internal/cmd/server"
	logpkg "github.com/rzbill/uniq/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// initialize logger for CLI
	// Respect UNIQ_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("UNIQ_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(logpkg.WithLevel(parsed))

	// Redirect standard library logs to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "uniq",
		Short: "uniq identifier service CLI",
		Long:  "uniq mints identifiers unique to the generating process and host. This CLI manages the server and mints or decodes identifiers.",
	}

	// serve
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the uniq HTTP server",
		Aliases: []string{"server"},
		RunE: func(cmd *cobra.Command, args []string) error {
			httpAddr, _ := cmd.Flags().GetString("http")
			cfgPath, _ := cmd.Flags().GetString("config")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				HTTPAddr:   httpAddr,
				ConfigPath: cfgPath,
				LogLevel:   logLevel,
				LogFormat:  logFormat,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serveCmd.Flags().String("http", "", "HTTP listen address (default from config, :8080)")
	serveCmd.Flags().String("config", "", "Config file path (default: search uniq.yaml|uniq.json in cwd, user config dir, /etc/uniq)")
	serveCmd.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	serveCmd.Flags().String("log-format", "", "Log format: text|json")
	rootCmd.AddCommand(serveCmd)

	// client commands (implemented in internal/cmd/client)
	rootCmd.AddCommand(clientcmd.NewNewCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewWellKnownCommand())
	rootCmd.AddCommand(clientcmd.NewParseCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("UNIQ_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
