package transport

import "errors"

// Connection establishment errors.
//
// Design decision: We define sentinel errors rather than wrapping
// everything generically so callers can distinguish a bad proxy address
// (configuration mistake, fail fast) from a dial failure (network
// condition).
var (
	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is
	// not in "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrInvalidServerAddress is returned when the target host is empty
	// or the port is out of range.
	ErrInvalidServerAddress = errors.New("invalid server address")
)
