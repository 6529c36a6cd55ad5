package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arsemag/Web-Crawler/internal/wire"
)

// Login flow paths and the bootstrap cookie.
//
// The server hands out a CSRF cookie on the login GET, but it expects the
// request to already carry one; any syntactically valid token works for
// the bootstrap because the server only compares it against the form echo
// on the POST.
const (
	loginPath        = "/accounts/login/?next=/fakebook/"
	loginPostPath    = "/accounts/login/"
	defaultRedirect  = "/fakebook/"
	bootstrapCSRF    = "csrftoken=k2puPprfwGcax6xuFgEWiBbKniO7Q1CK"
	formContentType  = "application/x-www-form-urlencoded"
	loginBodyPattern = "username=%s&password=%s&csrfmiddlewaretoken=%s&next=%%2Ffakebook%%2F"
)

// State is the session state produced by a completed login sequence.
// All fields default to empty strings; a failed extraction leaves them
// that way rather than failing the run.
type State struct {
	// CSRFToken is the anti-forgery token issued on the login page GET.
	CSRFToken string

	// SessionID is the authenticated session cookie issued by the POST.
	SessionID string

	// Path is the request path of the post-login page.
	Path string

	// StatusLine is the status line of the post-login page response.
	StatusLine string

	// Body is the post-login redirect page's body, the sequence's output.
	Body string
}

// CookieHeader renders the state as the Cookie header value used on
// authenticated requests.
func (s State) CookieHeader() string {
	return "csrftoken=" + s.CSRFToken + "; sessionid=" + s.SessionID
}

// exchange carries the connection and accumulated state through the steps.
type exchange struct {
	stream   io.ReadWriter
	host     string
	username string
	password string

	state        State
	redirectPath string
}

// roundTrip sends one request on the stream and parses the reply.
// This is the only place the wire primitives meet the transport.
func (ex *exchange) roundTrip(method, path string, extra wire.Headers, body string) (wire.Response, error) {
	req := wire.BuildRequest(method, path, ex.host, extra, body)
	if _, err := io.WriteString(ex.stream, req); err != nil {
		return wire.Response{}, fmt.Errorf("send %s %s: %w", method, path, err)
	}
	raw, err := wire.ReceiveUntilDelimiter(ex.stream)
	if err != nil {
		return wire.Response{}, fmt.Errorf("receive %s %s: %w", method, path, err)
	}
	return wire.ParseResponse(string(raw)), nil
}

// Step is one stage of the login state machine.
// Steps run strictly in order; a step returns an error only for transport
// failures, never for response-shape anomalies.
type Step interface {
	// Do executes the step, reading and writing exchange state.
	Do(ctx context.Context, ex *exchange) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// loginPageStep fetches the login form and harvests the CSRF token.
type loginPageStep struct{}

func (loginPageStep) Name() string { return "login_page" }

func (loginPageStep) Do(_ context.Context, ex *exchange) error {
	extra := wire.Headers{{Key: "Cookie", Value: bootstrapCSRF}}
	resp, err := ex.roundTrip("GET", loginPath, extra, "")
	if err != nil {
		return err
	}
	ex.state.CSRFToken = CSRFTokenFromCookie(resp.Header("set-cookie"))
	return nil
}

// submitCredentialsStep POSTs the login form and harvests the session id
// and the redirect target.
type submitCredentialsStep struct{}

func (submitCredentialsStep) Name() string { return "submit_credentials" }

func (submitCredentialsStep) Do(_ context.Context, ex *exchange) error {
	body := fmt.Sprintf(loginBodyPattern, ex.username, ex.password, ex.state.CSRFToken)
	extra := wire.Headers{
		{Key: "Referer", Value: "https://" + ex.host + loginPath},
		{Key: "Content-Type", Value: formContentType},
		{Key: "Origin", Value: "https://" + ex.host},
		{Key: "Cookie", Value: "csrftoken=" + ex.state.CSRFToken},
	}
	resp, err := ex.roundTrip("POST", loginPostPath, extra, body)
	if err != nil {
		return err
	}
	ex.state.SessionID = SessionIDFromCookie(resp.Header("set-cookie"))
	ex.redirectPath = resp.Header("location")
	return nil
}

// followRedirectStep fetches the post-login redirect target with the full
// cookie set. Its body is the sequence's output.
type followRedirectStep struct{}

func (followRedirectStep) Name() string { return "follow_redirect" }

func (followRedirectStep) Do(_ context.Context, ex *exchange) error {
	path := ex.redirectPath
	if path == "" {
		path = defaultRedirect
	}
	extra := wire.Headers{{Key: "Cookie", Value: ex.state.CookieHeader()}}
	resp, err := ex.roundTrip("GET", path, extra, "")
	if err != nil {
		return err
	}
	ex.state.Path = path
	ex.state.StatusLine = resp.StatusLine
	ex.state.Body = resp.Body
	ex.redirectPath = path
	return nil
}

// Sequencer runs the login steps in order against one connection.
type Sequencer struct {
	// logger is used for structured logging during the sequence.
	logger *slog.Logger
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*Sequencer)

// WithLogger sets a custom logger for the sequencer.
func WithLogger(logger *slog.Logger) SequencerOption {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// NewSequencer creates a Sequencer.
func NewSequencer(opts ...SequencerOption) *Sequencer {
	s := &Sequencer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run executes the three-step login sequence on the given stream.
//
// The stream must be an established, encrypted connection to host; the
// sequencer never opens or closes connections. On success the returned
// State carries the session cookies and the redirect page's body. The
// sequence stops early only on context cancellation or a transport error;
// protocol anomalies leave the corresponding State fields empty and the
// sequence continues.
func (s *Sequencer) Run(ctx context.Context, stream io.ReadWriter, host, username, password string) (State, error) {
	ex := &exchange{
		stream:   stream,
		host:     host,
		username: username,
		password: password,
	}

	steps := []Step{
		loginPageStep{},
		submitCredentialsStep{},
		followRedirectStep{},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			s.logger.Warn("login sequence cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ex.state, ctx.Err()
		default:
		}

		s.logger.Debug("executing login step",
			"step", step.Name(),
			"host", host,
		)

		if err := step.Do(ctx, ex); err != nil {
			s.logger.Error("login step failed",
				"step", step.Name(),
				"host", host,
				"error", err,
			)
			return ex.state, fmt.Errorf("login step %s: %w", step.Name(), err)
		}
	}

	s.logger.Info("login sequence complete",
		"host", host,
		"redirectPath", ex.redirectPath,
		"sessionEstablished", ex.state.SessionID != "",
	)
	return ex.state, nil
}
