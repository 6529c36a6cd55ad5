package model

import "time"

// CrawlReport is the result of one complete crawl run: the login exchange
// plus any pages visited afterwards.
//
// The report is assembled by the orchestrator and handed to the report
// writers and the history database. It never outlives the run except as a
// serialized record.
type CrawlReport struct {
	// Server is the hostname that was crawled.
	Server string `json:"server"`

	// Username is the account the crawl logged in as.
	// The password is deliberately not part of the report.
	Username string `json:"username"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total run duration.
	Elapsed time.Duration `json:"elapsed"`

	// PagesVisited is the number of pages fetched, including the
	// post-login redirect page.
	PagesVisited int `json:"pages_visited"`

	// Flags contains every secret flag found, in discovery order.
	Flags []string `json:"flags"`

	// Pages holds the visited pages.
	Pages []*Page `json:"pages,omitempty"`
}

// NewCrawlReport creates a report for the given target with the clock
// started.
func NewCrawlReport(server, username string) *CrawlReport {
	return &CrawlReport{
		Server:    server,
		Username:  username,
		StartedAt: time.Now(),
		Flags:     make([]string, 0),
		Pages:     make([]*Page, 0),
	}
}

// AddPage records a visited page and collects its flag, if any.
func (r *CrawlReport) AddPage(page *Page) {
	r.Pages = append(r.Pages, page)
	r.PagesVisited++
	if page.HasFlag() {
		r.Flags = append(r.Flags, page.Flag)
	}
}

// FlagFound reports whether at least one flag was discovered.
func (r *CrawlReport) FlagFound() bool {
	return len(r.Flags) > 0
}
