package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnv overlays UNIQ_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("UNIQ_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("UNIQ_MAX_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxBatch = n
		}
	}
	if v := os.Getenv("UNIQ_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("UNIQ_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// LoadEnvFiles loads dotenv files into the process environment, for FromEnv
// to pick up afterwards. Without arguments it tries ./.env and the user
// config dir; missing files are skipped. Variables already present in the
// environment win over file values.
func LoadEnvFiles(paths ...string) {
	if len(paths) == 0 {
		paths = defaultEnvFiles()
	}
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

func defaultEnvFiles() []string {
	files := []string{".env"}
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "uniq", ".env"))
	}
	return files
}
