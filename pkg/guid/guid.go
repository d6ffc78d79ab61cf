package guid

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rzbill/uniq/pkg/uid"
)

// Widths of the encoded form: 8-byte host address followed by the 14-byte
// UID, big-endian, no framing.
const (
	AddrSize = 8
	Size     = AddrSize + uid.Size
)

var (
	// ErrAddrSize is returned by Make when the host address is not exactly
	// AddrSize bytes.
	ErrAddrSize = errors.New("guid: host address must be 8 bytes")
	// ErrInvalidLength is returned by UnmarshalBinary when the input is not
	// exactly Size bytes.
	ErrInvalidLength = errors.New("guid: invalid encoded length")
)

// GUID pairs a host address with a process-scoped UID, making the identifier
// unique across hosts as well as within one. It is an immutable value and
// comparable with ==.
type GUID struct {
	addr [AddrSize]byte
	id   uid.UID
}

// Make builds a GUID from an 8-byte host address and a UID.
func Make(addr []byte, id uid.UID) (GUID, error) {
	if len(addr) != AddrSize {
		return GUID{}, fmt.Errorf("%w, got %d", ErrAddrSize, len(addr))
	}
	g := GUID{id: id}
	copy(g.addr[:], addr)
	return g, nil
}

// Addr returns the host address.
func (g GUID) Addr() [AddrSize]byte { return g.addr }

// UID returns the process-scoped part.
func (g GUID) UID() uid.UID { return g.id }

// String renders the GUID as the host address in lowercase hex, a slash, and
// the UID string, e.g. "0102030405060708/ff:1a:a".
func (g GUID) String() string {
	return hex.EncodeToString(g.addr[:]) + "/" + g.id.String()
}

// Parse is the inverse of String.
func Parse(s string) (GUID, error) {
	addrPart, idPart, ok := strings.Cut(s, "/")
	if !ok {
		return GUID{}, fmt.Errorf("guid: parse %q: expected addr/uid", s)
	}
	addr, err := hex.DecodeString(addrPart)
	if err != nil {
		return GUID{}, fmt.Errorf("guid: parse %q: bad host address: %w", s, err)
	}
	id, err := uid.Parse(idPart)
	if err != nil {
		return GUID{}, fmt.Errorf("guid: parse %q: %w", s, err)
	}
	return Make(addr, id)
}

// Encode writes the 22-byte big-endian form of g to w.
func Encode(w io.Writer, g GUID) error {
	_, err := w.Write(g.Bytes())
	return err
}

// Decode reads exactly 22 bytes from r and reconstructs the GUID. A short
// read yields io.EOF or io.ErrUnexpectedEOF, propagated unchanged.
func Decode(r io.Reader) (GUID, error) {
	var b [Size]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return GUID{}, err
	}
	return fromWire(&b), nil
}

// Bytes returns the 22-byte big-endian encoding of g.
func (g GUID) Bytes() []byte {
	b := make([]byte, 0, Size)
	b = append(b, g.addr[:]...)
	return append(b, g.id.Bytes()...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g GUID) MarshalBinary() ([]byte, error) { return g.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The input must be
// exactly Size bytes.
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrInvalidLength
	}
	var b [Size]byte
	copy(b[:], data)
	*g = fromWire(&b)
	return nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (g GUID) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, accepting what Parse
// accepts.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func fromWire(b *[Size]byte) GUID {
	var g GUID
	copy(g.addr[:], b[:AddrSize])
	// The tail is a full uid encoding; length is fixed, so this cannot fail.
	_ = g.id.UnmarshalBinary(b[AddrSize:])
	return g
}
