package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/rzbill/uniq/internal/config"
)

func TestNewAndCheckHealth(t *testing.T) {
	rt := New(Options{Config: cfgpkg.Default()})
	require.NoError(t, rt.CheckHealth(context.Background()))
}

func TestGeneratorsShareSequenceSpace(t *testing.T) {
	rt := New(Options{Config: cfgpkg.Default()})
	u := rt.UIDs().Next(context.Background())
	g := rt.GUIDs().Next(context.Background())

	assert.NotEqual(t, u, g.UID())
	// The GUID generator rides on the same UID generator, so both carry the
	// same discriminant.
	assert.Equal(t, u.Unique(), g.UID().Unique())
}

func TestStats(t *testing.T) {
	rt := New(Options{Config: cfgpkg.Default()})
	for i := 0; i < 3; i++ {
		rt.UIDs().Next(context.Background())
	}
	s := rt.Stats()
	assert.Equal(t, uint64(3), s.Generated)
	assert.NotEmpty(t, s.HostAddr)
	assert.GreaterOrEqual(t, s.UptimeMs, int64(0))
}

func TestConfigAccessor(t *testing.T) {
	cfg := cfgpkg.Default()
	cfg.MaxBatch = 7
	rt := New(Options{Config: cfg})
	assert.Equal(t, 7, rt.Config().MaxBatch)
}
