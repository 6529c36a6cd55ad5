// Package main provides the entry point for the webcrawler CLI.
//
// webcrawler logs into a Fakebook-style site over raw TLS sockets, walks
// its pages, and hunts for secret flags hidden in the HTML.
//
// Usage:
//
//	webcrawler crawl <username> <password>
//	webcrawler crawl -s example.com -p 443 <username> <password>
//
// See --help for all available options.
package main

// main is the entry point for webcrawler.
func main() {
	Execute()
}
