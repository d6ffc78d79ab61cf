// Package runtime wires generators, config, and logging into a single uniq
// instance. It exposes the UID and GUID generators, a basic health check,
// and counter snapshots for the status surface.
//
// Example:
//
//	cfg := config.Default()
//	rt := runtime.New(runtime.Options{Config: cfg, Logger: logger})
//	_ = rt.CheckHealth(context.Background())
//	u := rt.UIDs().Next(context.Background())
package runtime
