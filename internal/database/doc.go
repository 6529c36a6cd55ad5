// Package database stores crawl history in a SQLite database. Each
// finished crawl is recorded as one row holding the full report as JSON
// alongside a few indexed columns for listing, so the history command can
// show past runs without decoding every report.
package database
