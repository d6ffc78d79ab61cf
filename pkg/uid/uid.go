package uid

import (
	"strconv"
	"strings"
)

// UID is an identifier that is unique within the process that generated it
// over time, as long as the host clock is never set backwards across process
// restarts and restarts take longer than one millisecond. It carries a
// per-process host discriminant, a millisecond timestamp, and a sequence
// number disambiguating identifiers minted in the same millisecond.
//
// UID is an immutable value; two UIDs are equal iff all three fields are
// equal, so == does the right thing.
type UID struct {
	unique int32
	time   int64
	count  int16
}

// Make constructs a UID directly from its three fields. No range validation
// is applied; any field combination is a legal UID.
func Make(unique int32, timeMs int64, count int16) UID {
	return UID{unique: unique, time: timeMs, count: count}
}

// WellKnown returns the well-known UID for num: discriminant 0, timestamp 0.
// Distinct numbers yield distinct well-known UIDs. Generated UIDs avoid them
// only as far as a random discriminant avoids zero.
func WellKnown(num int16) UID {
	return UID{count: num}
}

// Unique returns the host discriminant.
func (u UID) Unique() int32 { return u.unique }

// Time returns the timestamp in milliseconds since the Unix epoch. It is 0
// for well-known UIDs.
func (u UID) Time() int64 { return u.time }

// Count returns the sequence number, or the caller-chosen number for
// well-known UIDs.
func (u UID) Count() int16 { return u.count }

// String renders the UID as "unique:time:count" with each field in lowercase
// signed hexadecimal without padding, e.g. "ff:1a:a".
func (u UID) String() string {
	return strconv.FormatInt(int64(u.unique), 16) + ":" +
		strconv.FormatInt(u.time, 16) + ":" +
		strconv.FormatInt(int64(u.count), 16)
}

// Parse is the inverse of String.
func Parse(s string) (UID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return UID{}, &ParseError{Input: s, reason: "expected unique:time:count"}
	}
	unique, err := strconv.ParseInt(parts[0], 16, 32)
	if err != nil {
		return UID{}, &ParseError{Input: s, reason: "bad unique field", err: err}
	}
	timeMs, err := strconv.ParseInt(parts[1], 16, 64)
	if err != nil {
		return UID{}, &ParseError{Input: s, reason: "bad time field", err: err}
	}
	count, err := strconv.ParseInt(parts[2], 16, 16)
	if err != nil {
		return UID{}, &ParseError{Input: s, reason: "bad count field", err: err}
	}
	return UID{unique: int32(unique), time: timeMs, count: int16(count)}, nil
}

// ParseError reports a malformed textual UID.
type ParseError struct {
	Input  string
	reason string
	err    error
}

func (e *ParseError) Error() string {
	return "uid: parse " + strconv.Quote(e.Input) + ": " + e.reason
}

func (e *ParseError) Unwrap() error { return e.err }

// Hash returns a hash of the UID. It mixes the timestamp and the sequence
// number; the discriminant is constant across every UID a process generates.
func (u UID) Hash() int {
	return int(int32(u.time) + int32(u.count))
}

// Compare returns -1, 0, 1 ordering UIDs by time, then count, then unique.
// The ordering is meaningful for UIDs from a single generator, whose
// (time, count) pairs never repeat and never decrease.
func (u UID) Compare(o UID) int {
	switch {
	case u.time < o.time:
		return -1
	case u.time > o.time:
		return 1
	case u.count < o.count:
		return -1
	case u.count > o.count:
		return 1
	case u.unique < o.unique:
		return -1
	case u.unique > o.unique:
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (u UID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting what Parse
// accepts.
func (u *UID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
