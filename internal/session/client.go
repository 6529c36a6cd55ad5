package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/arsemag/Web-Crawler/internal/wire"
)

// ContextDialer opens encrypted connections to the target.
// *transport.Dialer satisfies this; tests substitute in-memory pipes.
type ContextDialer interface {
	DialContext(ctx context.Context, host string, port int) (net.Conn, error)
}

// Client fetches pages with an established session's cookies.
// It opens one connection per request: the raw receive primitive frames
// responses by the header delimiter only, so reusing a connection across
// requests would leave body bytes in the stream.
type Client struct {
	dialer ContextDialer
	host   string
	port   int
	state  State
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientLogger sets a custom logger for the client.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an authenticated page fetcher for host:port using the
// cookies carried by state.
func NewClient(dialer ContextDialer, host string, port int, state State, opts ...ClientOption) *Client {
	c := &Client{
		dialer: dialer,
		host:   host,
		port:   port,
		state:  state,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Get fetches a single path with the session cookies and returns the
// parsed response. The connection is closed before returning on every
// path.
func (c *Client) Get(ctx context.Context, path string) (wire.Response, error) {
	conn, err := c.dialer.DialContext(ctx, c.host, c.port)
	if err != nil {
		return wire.Response{}, fmt.Errorf("connect for GET %s: %w", path, err)
	}
	defer conn.Close()

	extra := wire.Headers{{Key: "Cookie", Value: c.state.CookieHeader()}}
	req := wire.BuildRequest("GET", path, c.host, extra, "")
	if _, err := io.WriteString(conn, req); err != nil {
		return wire.Response{}, fmt.Errorf("send GET %s: %w", path, err)
	}

	raw, err := wire.ReceiveUntilDelimiter(conn)
	if err != nil {
		return wire.Response{}, fmt.Errorf("receive GET %s: %w", path, err)
	}

	resp := wire.ParseResponse(string(raw))
	c.logger.Debug("fetched page",
		"path", path,
		"status", resp.StatusLine,
		"bodyBytes", len(resp.Body),
	)
	return resp, nil
}
