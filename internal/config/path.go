package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the first config file found in the standard
// locations: the working directory, the user config dir, then /etc/uniq.
// It returns "" when none exists, which Load treats as defaults.
func DefaultConfigPath() string {
	candidates := []string{"uniq.yaml", "uniq.yml", "uniq.json"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(dir, "uniq", "uniq.yaml"),
			filepath.Join(dir, "uniq", "uniq.json"),
		)
	}
	candidates = append(candidates,
		filepath.Join("/etc", "uniq", "uniq.yaml"),
		filepath.Join("/etc", "uniq", "uniq.json"),
	)
	for _, p := range candidates {
		if isFile(p) {
			return p
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
