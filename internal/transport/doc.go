// Package transport establishes the encrypted connection the crawler
// speaks raw HTTP over.
//
// The crawler core only needs a bidirectional byte stream; everything
// about connection establishment lives here: TCP dialing, optional SOCKS5
// proxying, the TLS handshake, and certificate/hostname verification.
//
// Design decision: The dialer returns a plain net.Conn rather than a
// wrapper type because:
//  1. The wire package reads and writes bytes, nothing more
//  2. net.Conn already carries Close and deadline control
//  3. Tests can substitute any in-memory pipe
package transport
