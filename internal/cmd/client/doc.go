// Package client provides the `uniq` command-line client.
//
// The CLI mints and decodes identifiers from a terminal. Minting runs
// in-process by default and against the uniq HTTP API with --remote. It
// is primarily intended for developers and operators.
//
// Installation
//
//	go install github.com/rzbill/uniq/cmd/uniq@latest
//
// Or build from this repo and use the `uniq` binary.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it is
// read from the UNIQ_HTTP environment variable and defaults to
// http://127.0.0.1:8080.
//
// Usage
//
//	uniq new
//	uniq new --count 10 -o hex
//	uniq new --global                 # host-qualified GUIDs
//	uniq new --remote --count 5       # mint on the server
//
//	uniq wellknown 7
//	uniq wellknown -- -5              # negative numbers after --
//
//	uniq parse 2a:18bcfe56800:-5
//	uniq parse 0000002a0000018bcfe56800fffb
//
// Notes
//
//   - new prints one identifier per line for text and hex output, and a
//     JSON array for -o json.
//   - parse accepts UID text (unique:time:count), GUID text (addr/uid),
//     or either form hex-encoded, and always prints JSON fields.
package client
