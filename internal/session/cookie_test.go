package session

import "testing"

// TestCSRFTokenFromCookie tests CSRF token extraction from Set-Cookie values.
func TestCSRFTokenFromCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{
			name:   "simple cookie with attributes",
			cookie: "csrftoken=ABC123; Path=/",
			want:   "ABC123",
		},
		{
			name:   "cookie without attributes",
			cookie: "csrftoken=tok",
			want:   "tok",
		},
		{
			name:   "empty header",
			cookie: "",
			want:   "",
		},
		{
			name:   "no equals sign",
			cookie: "garbage; Path=/",
			want:   "",
		},
		{
			name:   "value containing equals yields nothing",
			cookie: "csrftoken=a=b; Path=/",
			want:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CSRFTokenFromCookie(tt.cookie); got != tt.want {
				t.Errorf("CSRFTokenFromCookie(%q) = %q, want %q", tt.cookie, got, tt.want)
			}
		})
	}
}

// TestSessionIDFromCookie tests session id extraction from Set-Cookie values.
func TestSessionIDFromCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{
			name:   "session cookie after Lax marker",
			cookie: "csrftoken=ABC; Path=/; SameSite=Lax; sessionid=XYZ; Path=/; HttpOnly",
			want:   "XYZ",
		},
		{
			name:   "no Lax marker yields empty without raising",
			cookie: "csrftoken=ABC; Path=/; SameSite=Strict; sessionid=XYZ",
			want:   "",
		},
		{
			name:   "empty header",
			cookie: "",
			want:   "",
		},
		{
			name:   "marker with nothing after it",
			cookie: "csrftoken=ABC; SameSite=Lax; ",
			want:   "",
		},
		{
			name:   "marker followed by pair without value",
			cookie: "csrftoken=ABC; SameSite=Lax; sessionid",
			want:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SessionIDFromCookie(tt.cookie); got != tt.want {
				t.Errorf("SessionIDFromCookie(%q) = %q, want %q", tt.cookie, got, tt.want)
			}
		})
	}
}

// TestStateCookieHeader tests Cookie header rendering.
func TestStateCookieHeader(t *testing.T) {
	t.Parallel()

	state := State{CSRFToken: "ABC", SessionID: "XYZ"}
	if got := state.CookieHeader(); got != "csrftoken=ABC; sessionid=XYZ" {
		t.Errorf("CookieHeader() = %q", got)
	}
}
