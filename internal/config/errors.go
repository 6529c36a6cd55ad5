package config

import "errors"

// Configuration validation errors returned by Config.Validate.
//
// Design decision: Package-level sentinel errors rather than fresh
// instances so callers can use errors.Is while still getting readable
// messages.
var (
	// ErrNoCredentials is returned when username or password is missing.
	// Credentials come from positional arguments or the environment.
	ErrNoCredentials = errors.New("missing credentials: supply username and password arguments or set them in the environment")

	// ErrNoServer is returned when the server name is empty.
	ErrNoServer = errors.New("no server specified")

	// ErrInvalidPort is returned when the port is outside 1-65535.
	ErrInvalidPort = errors.New("invalid port: must be between 1 and 65535")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidCrawlDepth is returned when the crawl depth is negative.
	// Use 0 to scan only the post-login page.
	ErrInvalidCrawlDepth = errors.New("invalid crawl depth: must be non-negative")

	// ErrInvalidMaxPages is returned when the page limit is not positive.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
