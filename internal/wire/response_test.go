package wire

import "testing"

// TestParseResponse tests raw response parsing.
func TestParseResponse(t *testing.T) {
	t.Parallel()

	t.Run("splits status line, headers, and body", func(t *testing.T) {
		t.Parallel()

		resp := ParseResponse("HTTP/1.1 200 OK\r\nK1: V1\r\nK2: V2\r\n\r\nBODY")

		if resp.StatusLine != "HTTP/1.1 200 OK" {
			t.Errorf("status line = %q", resp.StatusLine)
		}
		if len(resp.Headers) != 2 {
			t.Errorf("expected 2 headers, got %d", len(resp.Headers))
		}
		if resp.Headers["K1"] != "V1" || resp.Headers["K2"] != "V2" {
			t.Errorf("headers = %v", resp.Headers)
		}
		if resp.Body != "BODY" {
			t.Errorf("body = %q", resp.Body)
		}
	})

	t.Run("missing delimiter yields empty body", func(t *testing.T) {
		t.Parallel()

		resp := ParseResponse("HTTP/1.1 301 Moved\r\nLocation: /fakebook/")

		if resp.StatusLine != "HTTP/1.1 301 Moved" {
			t.Errorf("status line = %q", resp.StatusLine)
		}
		if resp.Body != "" {
			t.Errorf("body = %q, want empty", resp.Body)
		}
		if resp.Headers["Location"] != "/fakebook/" {
			t.Errorf("headers = %v", resp.Headers)
		}
	})

	t.Run("later duplicate headers overwrite earlier ones", func(t *testing.T) {
		t.Parallel()

		resp := ParseResponse("HTTP/1.1 200 OK\r\nX: first\r\nX: second\r\n\r\n")
		if resp.Headers["X"] != "second" {
			t.Errorf("X = %q, want %q", resp.Headers["X"], "second")
		}
	})

	t.Run("lines without separator are skipped", func(t *testing.T) {
		t.Parallel()

		resp := ParseResponse("HTTP/1.1 200 OK\r\ngarbage-line\r\nK: V\r\n\r\n")
		if len(resp.Headers) != 1 {
			t.Errorf("expected 1 header, got %v", resp.Headers)
		}
	})

	t.Run("header value keeps embedded separators", func(t *testing.T) {
		t.Parallel()

		resp := ParseResponse("HTTP/1.1 200 OK\r\nset-cookie: a=b; Path=/; comment: yes\r\n\r\n")
		if resp.Headers["set-cookie"] != "a=b; Path=/; comment: yes" {
			t.Errorf("value split more than once: %q", resp.Headers["set-cookie"])
		}
	})
}

// TestResponseHeader tests case-insensitive header lookup.
func TestResponseHeader(t *testing.T) {
	t.Parallel()

	resp := ParseResponse("HTTP/1.1 200 OK\r\nSet-Cookie: csrftoken=abc; Path=/\r\n\r\n")

	if got := resp.Header("set-cookie"); got != "csrftoken=abc; Path=/" {
		t.Errorf("Header(set-cookie) = %q", got)
	}
	if got := resp.Header("SET-COOKIE"); got != "csrftoken=abc; Path=/" {
		t.Errorf("Header(SET-COOKIE) = %q", got)
	}
	if got := resp.Header("location"); got != "" {
		t.Errorf("Header(location) = %q, want empty", got)
	}
}
