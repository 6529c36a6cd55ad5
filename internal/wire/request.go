package wire

import (
	"strconv"
	"strings"
)

// DefaultUserAgent is the User-Agent sent with every request.
// It mimics a desktop Firefox so the crawler blends in with browser traffic.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:136.0) Gecko/20100101 Firefox/136.0"

// Header is a single HTTP header field.
type Header struct {
	// Key is the header name, emitted exactly as written here.
	Key string

	// Value is the header value, passed through verbatim.
	Value string
}

// Headers is an insertion-ordered list of header fields.
//
// Design decision: We use a slice rather than a map because:
//  1. Emission order must equal insertion order for deterministic requests
//  2. The header count per request is tiny, so linear scans are fine
//  3. Keys stay case-sensitive exactly as supplied by the caller
type Headers []Header

// Get returns the value for the given key and whether it was present.
// Lookup is by exact key match.
func (h Headers) Get(key string) (string, bool) {
	for _, f := range h {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether the given key is present.
func (h Headers) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Set overrides the value of an existing key in place, preserving its
// position, or appends a new field when the key is absent.
func (h *Headers) Set(key, value string) {
	for i, f := range *h {
		if f.Key == key {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// baseHeaders returns the fixed header set present on every request.
// The order here is the order on the wire.
func baseHeaders(host string) Headers {
	return Headers{
		{Key: "Host", Value: host},
		{Key: "User-Agent", Value: DefaultUserAgent},
		{Key: "Accept", Value: "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		{Key: "Accept-Language", Value: "en-US,en;q=0.5"},
		{Key: "Connection", Value: "keep-alive"},
		{Key: "Upgrade-Insecure-Requests", Value: "1"},
		{Key: "TE", Value: "trailers"},
	}
}

// BuildRequest constructs a complete HTTP/1.1 request message.
//
// The base header set is always emitted first, in fixed order. Fields in
// extra override base fields with the same key in place; new keys are
// appended in the order supplied. If body is non-empty and no
// Content-Length was supplied, one is synthesized from the body's byte
// length. Header values are not validated or escaped.
//
// The function is pure: identical inputs yield byte-identical output.
func BuildRequest(method, path, host string, extra Headers, body string) string {
	headers := baseHeaders(host)
	for _, f := range extra {
		headers.Set(f.Key, f.Value)
	}
	if body != "" && !headers.Has("Content-Length") {
		headers.Set("Content-Length", strconv.Itoa(len(body)))
	}

	var b strings.Builder
	b.WriteString(method)
	b.WriteString(" ")
	b.WriteString(path)
	b.WriteString(" HTTP/1.1\r\n")
	for _, f := range headers {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
