// Package config provides loading and environment overlay for uniq runtime
// configuration. It exposes a Default() baseline, file loading in JSON or
// YAML, dotenv support, and an environment overlay (UNIQ_*).
//
// Example:
//
//	config.LoadEnvFiles()
//	cfg, err := config.Load(config.DefaultConfigPath())
//	if err != nil {
//	    return err
//	}
//	config.FromEnv(&cfg)
//	rt := runtime.New(runtime.Options{Config: cfg})
package config
