package wire

import (
	"strings"
	"testing"
)

// TestBuildRequest tests HTTP request construction.
func TestBuildRequest(t *testing.T) {
	t.Parallel()

	t.Run("builds GET with fixed base headers", func(t *testing.T) {
		t.Parallel()

		want := "GET /test/path HTTP/1.1\r\n" +
			"Host: example.com\r\n" +
			"User-Agent: " + DefaultUserAgent + "\r\n" +
			"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\r\n" +
			"Accept-Language: en-US,en;q=0.5\r\n" +
			"Connection: keep-alive\r\n" +
			"Upgrade-Insecure-Requests: 1\r\n" +
			"TE: trailers\r\n\r\n"

		got := BuildRequest("GET", "/test/path", "example.com", nil, "")
		if got != want {
			t.Errorf("unexpected request:\ngot:  %q\nwant: %q", got, want)
		}
	})

	t.Run("synthesizes content length for non-empty body", func(t *testing.T) {
		t.Parallel()

		extra := Headers{{Key: "Content-Type", Value: "application/x-www-form-urlencoded"}}
		got := BuildRequest("POST", "/submit", "example.com", extra, "key=value")

		if !strings.HasPrefix(got, "POST /submit HTTP/1.1\r\n") {
			t.Errorf("unexpected request line: %q", got)
		}
		if !strings.Contains(got, "Content-Type: application/x-www-form-urlencoded\r\n") {
			t.Error("missing Content-Type header")
		}
		if !strings.Contains(got, "Content-Length: 9\r\n") {
			t.Error("missing synthesized Content-Length header")
		}
		if !strings.HasSuffix(got, "\r\n\r\nkey=value") {
			t.Errorf("body not at end of message: %q", got)
		}
	})

	t.Run("does not synthesize content length for empty body", func(t *testing.T) {
		t.Parallel()

		got := BuildRequest("POST", "/submit", "example.com", nil, "")
		if strings.Contains(got, "Content-Length") {
			t.Errorf("unexpected Content-Length in bodyless request: %q", got)
		}
		if !strings.HasSuffix(got, "\r\n\r\n") {
			t.Errorf("request must end with blank line: %q", got)
		}
	})

	t.Run("respects explicit content length", func(t *testing.T) {
		t.Parallel()

		extra := Headers{{Key: "Content-Length", Value: "42"}}
		got := BuildRequest("POST", "/submit", "example.com", extra, "key=value")
		if !strings.Contains(got, "Content-Length: 42\r\n") {
			t.Errorf("explicit Content-Length not preserved: %q", got)
		}
		if strings.Contains(got, "Content-Length: 9") {
			t.Error("synthesized Content-Length despite explicit one")
		}
	})

	t.Run("extra header overrides base in place", func(t *testing.T) {
		t.Parallel()

		extra := Headers{{Key: "Connection", Value: "close"}}
		got := BuildRequest("GET", "/", "example.com", extra, "")

		if strings.Contains(got, "keep-alive") {
			t.Error("base Connection value not overridden")
		}
		// The overridden value must keep the base header's position.
		connIdx := strings.Index(got, "Connection: close")
		uirIdx := strings.Index(got, "Upgrade-Insecure-Requests")
		if connIdx == -1 || uirIdx == -1 || connIdx > uirIdx {
			t.Errorf("override did not preserve position:\n%q", got)
		}
	})

	t.Run("new extra headers append in supplied order", func(t *testing.T) {
		t.Parallel()

		extra := Headers{
			{Key: "X-First", Value: "1"},
			{Key: "X-Second", Value: "2"},
		}
		got := BuildRequest("GET", "/path", "example.com", extra, "")

		teIdx := strings.Index(got, "TE: trailers")
		firstIdx := strings.Index(got, "X-First: 1")
		secondIdx := strings.Index(got, "X-Second: 2")
		if !(teIdx < firstIdx && firstIdx < secondIdx) {
			t.Errorf("extra headers out of order:\n%q", got)
		}
	})

	t.Run("identical inputs yield identical output", func(t *testing.T) {
		t.Parallel()

		extra := Headers{{Key: "Cookie", Value: "csrftoken=abc"}}
		a := BuildRequest("POST", "/accounts/login/", "example.com", extra, "username=u")
		b := BuildRequest("POST", "/accounts/login/", "example.com", extra, "username=u")
		if a != b {
			t.Error("BuildRequest is not deterministic")
		}
	})
}

// TestHeaders tests the ordered header list.
func TestHeaders(t *testing.T) {
	t.Parallel()

	t.Run("set appends new keys and overrides existing ones", func(t *testing.T) {
		t.Parallel()

		var h Headers
		h.Set("A", "1")
		h.Set("B", "2")
		h.Set("A", "3")

		if len(h) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(h))
		}
		if h[0].Key != "A" || h[0].Value != "3" {
			t.Errorf("override did not keep position: %+v", h)
		}
		if v, ok := h.Get("B"); !ok || v != "2" {
			t.Errorf("Get(B) = %q, %v", v, ok)
		}
	})

	t.Run("get is case sensitive", func(t *testing.T) {
		t.Parallel()

		h := Headers{{Key: "Cookie", Value: "a=b"}}
		if _, ok := h.Get("cookie"); ok {
			t.Error("Get must match keys exactly as supplied")
		}
	})
}
