package guid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"net"
	"os"
	"sync"
	"time"
)

var (
	hostAddrOnce sync.Once
	hostAddr     [AddrSize]byte
)

// HostAddr returns the host address paired with UIDs by this package,
// resolved once per process. It digests the hostname and the non-loopback
// hardware addresses; hosts with neither get a random address, which still
// tells processes apart even though it no longer survives restarts.
//
// The address resists accidental collision between hosts. It is not a
// cryptographic identity and easily forged.
func HostAddr() [AddrSize]byte {
	hostAddrOnce.Do(func() { hostAddr = deriveHostAddr() })
	return hostAddr
}

func deriveHostAddr() [AddrSize]byte {
	h := sha256.New()
	seeded := false
	if name, err := os.Hostname(); err == nil && name != "" {
		h.Write([]byte(name))
		seeded = true
	}
	if ifaces, err := net.Interfaces(); err == nil {
		for _, ifc := range ifaces {
			if ifc.Flags&net.FlagLoopback != 0 || len(ifc.HardwareAddr) == 0 {
				continue
			}
			h.Write(ifc.HardwareAddr)
			seeded = true
		}
	}
	var out [AddrSize]byte
	if seeded {
		copy(out[:], h.Sum(nil))
		return out
	}
	if _, err := rand.Read(out[:]); err == nil {
		return out
	}
	binary.BigEndian.PutUint64(out[:], uint64(time.Now().UnixNano()))
	return out
}
