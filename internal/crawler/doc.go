// Package crawler provides page scanning and traversal for the target
// service: secret-flag extraction, anchor-link extraction, and a
// sequential spider built on an explicit frontier.
//
// # Components
//
//   - ExtractFlag / ExtractLinks: HTML extraction built on golang.org/x/net/html
//   - Frontier: worklist plus visited set with deduplication
//   - Spider: sequential crawl loop over an authenticated fetcher
//
// Design decision: We use golang.org/x/net/html rather than regex
// because:
//  1. It correctly handles malformed HTML common on the web
//  2. Attribute matching (class="secret_flag") is unambiguous
//  3. More maintainable than complex regex patterns
//
// The spider is strictly sequential with one connection per fetch; there
// is no concurrency, no politeness delay, and no retry. Depth 0 disables
// traversal entirely, leaving only the post-login page scan.
package crawler
