package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rzbill/uniq/pkg/log"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	HTTPAddr string     `json:"httpAddr" yaml:"httpAddr"`
	MaxBatch int        `json:"maxBatch" yaml:"maxBatch"`
	Log      log.Config `json:"log" yaml:"log"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		MaxBatch: 4096,
		Log: log.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
