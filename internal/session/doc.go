// Package session implements the cookie/CSRF form-login sequence against
// the target service and the authenticated page fetches that follow it.
//
// # Architecture
//
// The login flow is a strict three-step state machine:
//
//	login_page          GET the login form, harvest the CSRF cookie
//	submit_credentials  POST the form with the echoed CSRF token
//	follow_redirect     GET the post-login redirect target
//
// Each step is a Step value executed in order by the Sequencer, which owns
// nothing but the ordering and the logging. All session state (CSRF token,
// session id, final body) lives in a State value threaded through the
// steps and returned to the caller; nothing persists beyond one run.
//
// Design decision: Steps are an interface rather than free functions
// because:
//  1. Each step carries a Name() used in structured logs
//  2. The sequencer stays a dumb loop with uniform cancellation checks
//  3. Individual steps are testable against scripted streams
//
// # Error posture
//
// Only transport failures (write/read errors on the stream) abort the
// sequence. Malformed responses, missing cookies, and absent headers
// degrade silently to empty values: the tool favors completing the
// exchange over strict validation, and it never checks HTTP status codes.
package session
