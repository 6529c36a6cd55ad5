// Package model defines the value objects shared across the crawler:
// fetched pages and completed crawl reports.
//
// Types here are plain data with small helper methods. They carry no I/O
// and no references to the transport, which keeps every other package
// free to construct them in tests.
package model
