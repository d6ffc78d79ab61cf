// Package guid pairs process-scoped UIDs with an 8-byte host address,
// yielding identifiers unique across hosts.
//
// # Format
//
// A GUID is 22 bytes big-endian on the wire: [8 bytes host address][14 bytes
// uid]. The string form is the address in lowercase hex, a slash, and the
// UID string: "0102030405060708/ff:1a:a".
//
// The host address is derived once per process from the hostname and
// hardware addresses (see HostAddr). Uniqueness within the process comes
// entirely from the embedded UID.
package guid
