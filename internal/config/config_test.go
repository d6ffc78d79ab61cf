package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default http addr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxBatch != 4096 {
		t.Fatalf("default max batch = %d", cfg.MaxBatch)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("default log config = %+v", cfg.Log)
	}
}

func TestLoadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "uniq.json")
	data := `{"httpAddr":":9090","maxBatch":64,"log":{"level":"debug","format":"json"}}`
	writeFile(t, file, data)

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxBatch != 64 {
		t.Fatalf("max batch = %d", cfg.MaxBatch)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log config = %+v", cfg.Log)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "uniq.json")
	writeFile(t, file, `{"httpAddr":":7070"}`)

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxBatch != 4096 {
		t.Fatalf("max batch should keep its default, got %d", cfg.MaxBatch)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level should keep its default, got %q", cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "uniq.yaml")
	data := "httpAddr: \":9191\"\nmaxBatch: 128\nlog:\n  level: warn\n"
	writeFile(t, file, data)

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9191" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxBatch != 128 {
		t.Fatalf("max batch = %d", cfg.MaxBatch)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Fatalf("log config = %+v", cfg.Log)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("empty path should return defaults, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadBadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "uniq.json")
	writeFile(t, file, "{")
	if _, err := Load(file); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("UNIQ_HTTP_ADDR", ":7777")
	t.Setenv("UNIQ_MAX_BATCH", "99")
	t.Setenv("UNIQ_LOG_LEVEL", "debug")
	t.Setenv("UNIQ_LOG_FORMAT", "json")

	FromEnv(&cfg)
	if cfg.HTTPAddr != ":7777" {
		t.Fatalf("env override http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.MaxBatch != 99 {
		t.Fatalf("env override max batch, got %d", cfg.MaxBatch)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("env override log config, got %+v", cfg.Log)
	}
}

func TestFromEnvIgnoresBadInt(t *testing.T) {
	cfg := Default()
	t.Setenv("UNIQ_MAX_BATCH", "lots")
	FromEnv(&cfg)
	if cfg.MaxBatch != 4096 {
		t.Fatalf("bad int should leave the default, got %d", cfg.MaxBatch)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	unsetenv(t, "UNIQ_HTTP_ADDR")
	t.Cleanup(func() { os.Unsetenv("UNIQ_HTTP_ADDR") })

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "UNIQ_HTTP_ADDR=:6060\nUNIQ_LOG_LEVEL=debug\n")

	t.Setenv("UNIQ_LOG_LEVEL", "error") // present in environment beats file
	LoadEnvFiles(envFile, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("UNIQ_HTTP_ADDR"); got != ":6060" {
		t.Fatalf("UNIQ_HTTP_ADDR = %q, want :6060", got)
	}
	if got := os.Getenv("UNIQ_LOG_LEVEL"); got != "error" {
		t.Fatalf("UNIQ_LOG_LEVEL = %q, want error", got)
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		os.Unsetenv(key)
		t.Cleanup(func() { os.Setenv(key, old) })
	}
}
