package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultDialTimeout bounds connection establishment including the TLS
// handshake. Generous because the target may sit behind slow links.
const DefaultDialTimeout = 30 * time.Second

// Dialer establishes TLS connections to the crawl target.
// All fields are set through options; the zero value of each falls back
// to a safe default in NewDialer.
type Dialer struct {
	// timeout bounds the TCP dial and TLS handshake together.
	timeout time.Duration

	// proxyAddress, when non-empty, routes the TCP leg through a SOCKS5
	// proxy at this "host:port" address. TLS is layered on top, so the
	// proxy never sees plaintext.
	proxyAddress string

	// tlsConfig overrides the TLS client configuration.
	// When nil, a per-dial config with the target as ServerName is used.
	tlsConfig *tls.Config
}

// Option configures a Dialer.
type Option func(*Dialer)

// WithTimeout sets the connection establishment timeout.
func WithTimeout(d time.Duration) Option {
	return func(dl *Dialer) {
		dl.timeout = d
	}
}

// WithProxy routes connections through a SOCKS5 proxy at the given
// "host:port" address. An empty address disables proxying.
func WithProxy(address string) Option {
	return func(dl *Dialer) {
		dl.proxyAddress = address
	}
}

// WithTLSConfig sets a custom TLS client configuration.
// Useful in tests to trust a local certificate.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(dl *Dialer) {
		dl.tlsConfig = cfg
	}
}

// NewDialer creates a Dialer.
//
// This validates the proxy address format but does not touch the network;
// connection failures surface from DialContext. Separating construction
// from dialing keeps configuration errors distinct from network errors
// and makes the type trivial to construct in tests.
func NewDialer(opts ...Option) (*Dialer, error) {
	d := &Dialer{
		timeout: DefaultDialTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.proxyAddress != "" && !isValidHostPort(d.proxyAddress) {
		return nil, ErrInvalidProxyAddress
	}
	return d, nil
}

// DialContext opens a TCP connection to host:port, optionally through the
// configured SOCKS5 proxy, and completes a TLS handshake with hostname
// verification against host. The returned connection is ready for
// plaintext-over-TLS writes.
func (d *Dialer) DialContext(ctx context.Context, host string, port int) (net.Conn, error) {
	if host == "" || port < 1 || port > 65535 {
		return nil, ErrInvalidServerAddress
	}
	address := net.JoinHostPort(host, strconv.Itoa(port))

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	rawConn, err := d.dialTCP(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}

	cfg := d.tlsConfig
	if cfg == nil {
		cfg = &tls.Config{
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		}
	}

	tlsConn := tls.Client(rawConn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = rawConn.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("tls handshake with %s: %w", address, err)
	}
	return tlsConn, nil
}

// dialTCP establishes the plaintext TCP leg, direct or via SOCKS5.
func (d *Dialer) dialTCP(ctx context.Context, address string) (net.Conn, error) {
	if d.proxyAddress == "" {
		var nd net.Dialer
		return nd.DialContext(ctx, "tcp", address)
	}

	// We use nil auth because SOCKS proxies in this role typically run
	// without authentication.
	socks, err := proxy.SOCKS5("tcp", d.proxyAddress, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
	}

	// proxy.Dialer has no context support, so we dial in a goroutine and
	// race it against ctx. If ctx wins, the abandoned attempt may linger
	// briefly; its connection is closed when it completes.
	type dialResult struct {
		conn net.Conn
		err  error
	}
	resultCh := make(chan dialResult, 1)
	go func() {
		conn, err := socks.Dial("tcp", address)
		resultCh <- dialResult{conn, err}
	}()

	select {
	case result := <-resultCh:
		return result.conn, result.err
	case <-ctx.Done():
		go func() {
			if result := <-resultCh; result.conn != nil {
				_ = result.conn.Close() //nolint:errcheck // Best effort cleanup
			}
		}()
		return nil, ctx.Err()
	}
}

// ProxyAddress returns the configured SOCKS5 proxy address, empty when
// connections are direct.
func (d *Dialer) ProxyAddress() string {
	return d.proxyAddress
}

// isValidHostPort checks the "host:port" shape without resolving anything.
func isValidHostPort(address string) bool {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}
