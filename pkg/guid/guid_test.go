package guid

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/rzbill/uniq/pkg/uid"
)

var testAddr = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestMakeValidatesAddrLength(t *testing.T) {
	if _, err := Make(testAddr[:7], uid.UID{}); !errors.Is(err, ErrAddrSize) {
		t.Fatalf("7-byte addr: err = %v, want ErrAddrSize", err)
	}
	if _, err := Make(append(testAddr, 9), uid.UID{}); !errors.Is(err, ErrAddrSize) {
		t.Fatalf("9-byte addr: err = %v, want ErrAddrSize", err)
	}
	if _, err := Make(testAddr, uid.UID{}); err != nil {
		t.Fatalf("8-byte addr: %v", err)
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	g, err := Make(testAddr, uid.Make(255, 26, 10))
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	want := "0102030405060708/ff:1a:a"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	parsed, err := Parse(want)
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if parsed != g {
		t.Fatalf("Parse = %v, want %v", parsed, g)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"0102030405060708",         // no uid part
		"01020304/ff:1a:a",         // short addr
		"010203040506070z/ff:1a:a", // non-hex addr
		"0102030405060708/ff:1a",   // bad uid
		"0102030405060708/zz:1a:a", // bad uid field
	}
	for _, s := range cases {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestCodecGolden(t *testing.T) {
	g, err := Make(testAddr, uid.Make(42, 1700000000000, -5))
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	want := "0102030405060708" + "0000002a0000018bcfe56800fffb"
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := hex.EncodeToString(buf.Bytes()); got != want {
		t.Fatalf("encoded = %s, want %s", got, want)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != g {
		t.Fatalf("Decode = %v, want %v", decoded, g)
	}
}

func TestDecodeShortRead(t *testing.T) {
	if _, err := Decode(bytes.NewReader(nil)); err != io.EOF {
		t.Fatalf("empty source: err = %v, want io.EOF", err)
	}
	if _, err := Decode(bytes.NewReader(make([]byte, Size-1))); err != io.ErrUnexpectedEOF {
		t.Fatalf("truncated source: err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestBinaryMarshalRoundTrip(t *testing.T) {
	g, err := Make(testAddr, uid.Make(-1, -1, -1))
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got GUID
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got != g {
		t.Fatalf("round trip = %v, want %v", got, g)
	}
	if err := got.UnmarshalBinary(data[:Size-1]); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("short input: err = %v, want ErrInvalidLength", err)
	}
}

func TestHostAddrStable(t *testing.T) {
	if HostAddr() != HostAddr() {
		t.Fatalf("HostAddr changed between calls")
	}
}

func TestGeneratorPairsHostAddr(t *testing.T) {
	g := NewGenerator(uid.NewGenerator())
	a := g.Next(context.Background())
	b := g.Next(context.Background())
	if a.Addr() != HostAddr() || b.Addr() != HostAddr() {
		t.Fatalf("GUIDs should carry the process host address")
	}
	if a == b {
		t.Fatalf("generator returned duplicate GUIDs")
	}
	if a.UID() == b.UID() {
		t.Fatalf("embedded UIDs should differ")
	}
}

func TestNilGeneratorUsesPackageDefault(t *testing.T) {
	before := uid.Default().Stats().Generated
	g := NewGenerator(nil)
	_ = g.Next(context.Background())
	if after := uid.Default().Stats().Generated; after != before+1 {
		t.Fatalf("expected the uid package default to mint the UID")
	}
}
