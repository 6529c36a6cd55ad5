// Package report renders crawl results for humans and tools. The simple
// writer prints the flag verdict the way the crawler's users expect on a
// terminal, the JSON writer targets programmatic consumers, and the
// markdown writer produces a shareable document.
package report
