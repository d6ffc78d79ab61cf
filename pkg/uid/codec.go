package uid

import (
	"encoding/binary"
	"errors"
	"io"
)

// Size is the encoded width of a UID in bytes: 4-byte unique, 8-byte time,
// 2-byte count, big-endian, no framing.
const Size = 14

// ErrInvalidLength is returned by UnmarshalBinary when the input is not
// exactly Size bytes.
var ErrInvalidLength = errors.New("uid: invalid encoded length")

// Encode writes the 14-byte big-endian form of u to w. A sink that cannot
// accept all 14 bytes yields the writer's error (or io.ErrShortWrite).
func Encode(w io.Writer, u UID) error {
	var b [Size]byte
	u.put(&b)
	_, err := w.Write(b[:])
	return err
}

// Decode reads exactly 14 bytes from r and reconstructs the UID verbatim.
// Field values are not validated; any bit pattern is legal. A short read
// yields io.EOF or io.ErrUnexpectedEOF, propagated unchanged.
func Decode(r io.Reader) (UID, error) {
	var b [Size]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return UID{}, err
	}
	return fromWire(&b), nil
}

// Bytes returns the 14-byte big-endian encoding of u.
func (u UID) Bytes() []byte {
	var b [Size]byte
	u.put(&b)
	return b[:]
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The input must be
// exactly Size bytes.
func (u *UID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrInvalidLength
	}
	var b [Size]byte
	copy(b[:], data)
	*u = fromWire(&b)
	return nil
}

func (u UID) put(b *[Size]byte) {
	binary.BigEndian.PutUint32(b[0:4], uint32(u.unique))
	binary.BigEndian.PutUint64(b[4:12], uint64(u.time))
	binary.BigEndian.PutUint16(b[12:14], uint16(u.count))
}

func fromWire(b *[Size]byte) UID {
	return UID{
		unique: int32(binary.BigEndian.Uint32(b[0:4])),
		time:   int64(binary.BigEndian.Uint64(b[4:12])),
		count:  int16(binary.BigEndian.Uint16(b[12:14])),
	}
}
