package session

import "strings"

// sameSiteLaxMarker is the attribute text that precedes the session
// cookie in the login POST's Set-Cookie header. The server emits the CSRF
// cookie first with "SameSite=Lax; " between it and the session cookie,
// so the marker doubles as the split point.
const sameSiteLaxMarker = "Lax; "

// CSRFTokenFromCookie extracts the CSRF token from a Set-Cookie header
// value. The token is the value of the first "name=value" pair, i.e. the
// part before the first "; " and after its "=".
//
// Any shape mismatch yields "" rather than an error; a missing token just
// means the subsequent POST carries an empty one.
func CSRFTokenFromCookie(cookie string) string {
	first := strings.Split(cookie, "; ")[0]
	parts := strings.Split(first, "=")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// SessionIDFromCookie extracts the session id from the login POST's
// Set-Cookie header value. Extraction is only attempted when the literal
// "Lax; " marker is present: the session cookie is the pair immediately
// after it. Everything else yields "".
func SessionIDFromCookie(cookie string) string {
	if !strings.Contains(cookie, sameSiteLaxMarker) {
		return ""
	}
	after := strings.SplitN(cookie, sameSiteLaxMarker, 2)[1]
	pair := strings.Split(after, "; ")[0]
	parts := strings.Split(pair, "=")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
