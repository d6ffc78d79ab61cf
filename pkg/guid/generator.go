package guid

import (
	"context"

	"github.com/rzbill/uniq/pkg/uid"
)

// Generator mints GUIDs by pairing the process host address with UIDs from
// an underlying uid.Generator.
type Generator struct {
	addr [AddrSize]byte
	uids *uid.Generator
}

// NewGenerator wraps g. A nil g uses the uid package default, sharing its
// sequence space with everything else in the process that does the same.
func NewGenerator(g *uid.Generator) *Generator {
	if g == nil {
		g = uid.Default()
	}
	return &Generator{addr: HostAddr(), uids: g}
}

// Next returns a GUID distinct from every other GUID minted from the same
// underlying uid.Generator. Cancellation behaves as in uid.Generator.Next.
func (g *Generator) Next(ctx context.Context) GUID {
	return GUID{addr: g.addr, id: g.uids.Next(ctx)}
}
