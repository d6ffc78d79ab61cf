// Package uid provides a compact identifier that is unique with respect to
// the process it was generated in.
//
// # Format
//
// A UID is 14 bytes big-endian on the wire: [4 bytes unique][8 bytes
// ms_timestamp][2 bytes count]. The unique field is a per-process random
// discriminant drawn once, the timestamp is the millisecond the UID was
// minted in, and the count distinguishes UIDs minted within the same
// millisecond. The string form is the three fields as signed lowercase hex
// joined by colons, e.g. "ff:1a:a".
//
// # Monotonicity
//
// The Generator keeps issued timestamps non-decreasing:
//   - If the 16-bit count space for a millisecond runs out, Next waits in
//     ~1ms steps until the clock leaves that millisecond.
//   - If the system clock regresses, the stored millisecond is bumped by one
//     instead of adopting the earlier reading.
//
// # Well-known UIDs
//
// WellKnown(num) builds a UID with zero unique and time fields, reserved for
// identifiers that must mean the same thing in every process. Generated UIDs
// carry a real timestamp, so the two forms do not collide in practice.
//
// Usage
//
//	u := uid.Next(ctx)
//	s := u.String()      // "-4a21f3c0:198f2b4d1a2:-8000"
//	b := u.Bytes()       // 14-byte representation
package uid
