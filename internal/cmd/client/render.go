package client

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rzbill/uniq/pkg/guid"
	"github.com/rzbill/uniq/pkg/uid"
)

// uidJSON mirrors the server's UID payload so local and remote minting
// render identically.
type uidJSON struct {
	Text   string `json:"text"`
	Hex    string `json:"hex"`
	Unique int32  `json:"unique"`
	Time   int64  `json:"time"`
	Count  int16  `json:"count"`
}

type guidJSON struct {
	Text string  `json:"text"`
	Hex  string  `json:"hex"`
	Addr string  `json:"addr"`
	UID  uidJSON `json:"uid"`
}

func uidView(u uid.UID) uidJSON {
	return uidJSON{
		Text:   u.String(),
		Hex:    hex.EncodeToString(u.Bytes()),
		Unique: u.Unique(),
		Time:   u.Time(),
		Count:  u.Count(),
	}
}

func guidView(g guid.GUID) guidJSON {
	addr := g.Addr()
	return guidJSON{
		Text: g.String(),
		Hex:  hex.EncodeToString(g.Bytes()),
		Addr: hex.EncodeToString(addr[:]),
		UID:  uidView(g.UID()),
	}
}

func renderUIDs(w io.Writer, format string, ids []uidJSON) error {
	switch format {
	case "text":
		for _, id := range ids {
			fmt.Fprintln(w, id.Text)
		}
	case "hex":
		for _, id := range ids {
			fmt.Fprintln(w, id.Hex)
		}
	case "json":
		return encodeIndented(w, ids)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or hex)", format)
	}
	return nil
}

func renderGUIDs(w io.Writer, format string, ids []guidJSON) error {
	switch format {
	case "text":
		for _, id := range ids {
			fmt.Fprintln(w, id.Text)
		}
	case "hex":
		for _, id := range ids {
			fmt.Fprintln(w, id.Hex)
		}
	case "json":
		return encodeIndented(w, ids)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or hex)", format)
	}
	return nil
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// msToUTC renders a millisecond epoch as RFC3339 in UTC.
func msToUTC(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
}
