// Package wire implements the raw HTTP/1.1 message primitives used by the
// crawler: request construction, delimiter-based response receiving with
// transparent gzip handling, and response parsing.
//
// # Architecture
//
// The package deliberately works at the byte level instead of using
// net/http. The crawler speaks HTTP/1.1 over an already-established TLS
// connection and needs exact control over header order and framing, which
// net/http's canonicalizing client does not provide.
//
// Design decision: Requests are built as strings and responses are parsed
// with plain splits because:
//  1. The wire format is small and fully under our control
//  2. Header emission order must be deterministic and caller-defined
//  3. Best-effort parsing (never fail on malformed input) is a requirement,
//     not an accident
//
// # Components
//
//   - Headers / BuildRequest: ordered header list and request serialization
//   - ReceiveUntilDelimiter: streamed receive up to the header/body boundary
//   - Response / ParseResponse: status line, header map, and body extraction
//
// All functions here are free of network side effects except
// ReceiveUntilDelimiter, which only reads from the io.Reader it is given.
package wire
