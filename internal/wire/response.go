package wire

import (
	"strings"
)

// Response is one parsed HTTP reply.
// It is a transient value: parsed, inspected, and discarded within a
// single exchange.
type Response struct {
	// StatusLine is the first line of the message, unparsed
	// (e.g. "HTTP/1.1 200 OK").
	StatusLine string

	// Headers maps header names to values, keys exactly as received.
	// When the same name appears more than once, the last value wins.
	Headers map[string]string

	// Body is everything after the header/body delimiter, empty when
	// the delimiter is absent.
	Body string
}

// ParseResponse splits a raw response into status line, headers, and body.
//
// The split is intentionally forgiving: a missing delimiter leaves the
// whole input as the header section, and lines without a ": " separator
// are skipped. Nothing here ever fails; a malformed response simply
// yields fewer headers.
func ParseResponse(raw string) Response {
	headerSection, body, found := strings.Cut(raw, Delimiter)
	if !found {
		headerSection = raw
		body = ""
	}

	lines := strings.Split(headerSection, "\r\n")
	resp := Response{
		StatusLine: lines[0],
		Headers:    make(map[string]string),
		Body:       body,
	}
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		resp.Headers[key] = value
	}
	return resp
}

// Header returns the value for the named header, matching case-insensitively.
// Servers vary in header casing on the wire, so lookups fold case while the
// stored keys keep the form the server sent. Returns "" when absent.
func (r Response) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
