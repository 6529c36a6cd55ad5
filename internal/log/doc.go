// Package log provides slog handler wrappers for the crawler.
//
// The crawler handles a password, CSRF tokens, and session cookies, all
// of which would otherwise end up in debug logs of the login exchange.
// SecureHandler masks those attributes before they reach the underlying
// handler, so verbose logging stays safe to paste into bug reports.
package log
