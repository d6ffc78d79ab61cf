package runtime

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	cfgpkg "github.com/rzbill/uniq/internal/config"
	"github.com/rzbill/uniq/pkg/guid"
	"github.com/rzbill/uniq/pkg/log"
	"github.com/rzbill/uniq/pkg/uid"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger log.Logger
}

// Runtime wires the generators, config, and logger for a single instance.
type Runtime struct {
	uids    *uid.Generator
	guids   *guid.Generator
	config  cfgpkg.Config
	logger  log.Logger
	started time.Time
}

// New builds a Runtime with its own UID generator and a GUID generator
// layered on top of it. A nil Logger gets the package default.
func New(opts Options) *Runtime {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewLogger()
	}
	uids := uid.NewGenerator()
	rt := &Runtime{
		uids:    uids,
		guids:   guid.NewGenerator(uids),
		config:  opts.Config,
		logger:  logger.WithComponent("runtime"),
		started: time.Now(),
	}
	rt.logger.Debug("runtime initialized", log.Str("host_addr", rt.HostAddrHex()))
	return rt
}

// CheckHealth mints a probe UID and verifies it carries a sane timestamp.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	u := r.uids.Next(ctx)
	if u.Time() <= 0 {
		return fmt.Errorf("runtime: probe uid has timestamp %d", u.Time())
	}
	return nil
}

// UIDs returns the instance UID generator.
func (r *Runtime) UIDs() *uid.Generator { return r.uids }

// GUIDs returns the instance GUID generator.
func (r *Runtime) GUIDs() *guid.Generator { return r.guids }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the runtime logger.
func (r *Runtime) Logger() log.Logger { return r.logger }

// HostAddrHex returns the GUID host address as lowercase hex.
func (r *Runtime) HostAddrHex() string {
	addr := guid.HostAddr()
	return hex.EncodeToString(addr[:])
}

// Stats is a point-in-time snapshot of the instance.
type Stats struct {
	UptimeMs      int64  `json:"uptimeMs"`
	HostAddr      string `json:"hostAddr"`
	Generated     uint64 `json:"generated"`
	ClockWaits    uint64 `json:"clockWaits"`
	ClockRetreats uint64 `json:"clockRetreats"`
}

// Stats reports uptime and generator counters.
func (r *Runtime) Stats() Stats {
	s := r.uids.Stats()
	return Stats{
		UptimeMs:      time.Since(r.started).Milliseconds(),
		HostAddr:      r.HostAddrHex(),
		Generated:     s.Generated,
		ClockWaits:    s.ClockWaits,
		ClockRetreats: s.ClockRetreats,
	}
}
