// Package httpserver provides the JSON REST surface for uniq: health and
// status probes, batch UID/GUID generation, well-known lookup, and parsing.
//
// Example:
//
//	rt := runtime.New(runtime.Options{Config: config.Default()})
//	s := httpserver.New(rt, logger)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
