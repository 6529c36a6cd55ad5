package model

import "strings"

// Page is one fetched page from the target service.
//
// Design decision: Headers are a flat map of the values exactly as they
// appeared on the wire (last duplicate wins) rather than http.Header,
// because pages come off a raw byte stream and never pass through
// net/http's canonicalization.
type Page struct {
	// Path is the request path that produced this page.
	Path string `json:"path"`

	// StatusLine is the raw first line of the response
	// (e.g. "HTTP/1.1 200 OK").
	StatusLine string `json:"status_line"`

	// Headers contains the response headers, keys as received.
	Headers map[string]string `json:"headers,omitempty"`

	// Body is the response body after any decompression.
	Body string `json:"-"`

	// Flag is the secret flag found on this page, empty when none.
	Flag string `json:"flag,omitempty"`
}

// Header returns the named header value, matching case-insensitively.
// Returns empty string when the header is absent.
func (p *Page) Header(name string) string {
	if v, ok := p.Headers[name]; ok {
		return v
	}
	for k, v := range p.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// HasFlag reports whether a secret flag was found on this page.
func (p *Page) HasFlag() bool {
	return p.Flag != ""
}
