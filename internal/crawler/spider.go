package crawler

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/arsemag/Web-Crawler/internal/model"
	"github.com/arsemag/Web-Crawler/internal/wire"
)

// Fetcher retrieves a single page by path over the established session.
// session.Client satisfies this.
type Fetcher interface {
	Get(ctx context.Context, path string) (wire.Response, error)
}

// Spider performs a sequential, single-host crawl from the post-login
// page, scanning every fetched page for secret flags.
//
// Design decision: The spider takes a Fetcher rather than owning a
// connection because:
//  1. Session cookies and connection lifecycle belong to the session package
//  2. Tests substitute an in-memory fetcher
//  3. The crawl loop stays pure worklist mechanics
type Spider struct {
	// fetcher retrieves pages with the session's cookies.
	fetcher Fetcher

	// host is the crawl target; absolute links to other hosts are skipped.
	host string

	// maxDepth limits how many link hops to follow from the start page.
	// 0 means no traversal at all.
	maxDepth int

	// maxPages limits the number of pages fetched by the crawl loop.
	maxPages int

	// ignorePatterns lists path substrings to skip, such as logout links
	// that would invalidate the session.
	ignorePatterns []string

	// logger for structured logging.
	logger *slog.Logger
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithMaxDepth sets the maximum link depth to follow.
// 0 disables traversal, 1 follows only links on the start page, etc.
func WithMaxDepth(depth int) SpiderOption {
	return func(s *Spider) {
		s.maxDepth = depth
	}
}

// WithMaxPages sets the maximum number of pages to fetch.
func WithMaxPages(maxPages int) SpiderOption {
	return func(s *Spider) {
		s.maxPages = maxPages
	}
}

// WithIgnorePatterns sets path substrings the spider skips during
// traversal.
func WithIgnorePatterns(patterns []string) SpiderOption {
	return func(s *Spider) {
		s.ignorePatterns = patterns
	}
}

// WithSpiderLogger sets a custom logger for the spider.
func WithSpiderLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		s.logger = logger
	}
}

// NewSpider creates a Spider crawling host through the given fetcher.
func NewSpider(fetcher Fetcher, host string, opts ...SpiderOption) *Spider {
	s := &Spider{
		fetcher:  fetcher,
		host:     host,
		maxDepth: 0,
		maxPages: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Crawl traverses same-host links starting from the already-fetched start
// page and returns the additional pages visited, each scanned for flags.
// The start page itself is not in the result; it belongs to the caller.
//
// Fetch failures on individual pages are logged and skipped; only context
// cancellation ends the crawl with an error.
func (s *Spider) Crawl(ctx context.Context, start *model.Page) ([]*model.Page, error) {
	pages := make([]*model.Page, 0)
	if s.maxDepth < 1 {
		return pages, nil
	}

	frontier := NewFrontier()
	frontier.MarkVisited(start.Path)
	for _, path := range s.sameHostPaths(ExtractLinks(start.Body)) {
		frontier.Push(path, 1)
	}

	for len(pages) < s.maxPages {
		path, depth, ok := frontier.Pop()
		if !ok {
			break
		}

		select {
		case <-ctx.Done():
			return pages, ctx.Err()
		default:
		}

		resp, err := s.fetcher.Get(ctx, path)
		if err != nil {
			// Some pages will fail; the crawl carries on.
			s.logger.Warn("fetch failed", "path", path, "error", err)
			continue
		}

		page := &model.Page{
			Path:       path,
			StatusLine: resp.StatusLine,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}
		if flag, found := ExtractFlag(resp.Body); found {
			page.Flag = flag
			s.logger.Info("flag found", "path", path)
		}
		pages = append(pages, page)

		if depth < s.maxDepth {
			for _, next := range s.sameHostPaths(ExtractLinks(resp.Body)) {
				frontier.Push(next, depth+1)
			}
		}
	}

	s.logger.Debug("crawl finished",
		"pagesVisited", len(pages),
		"queued", frontier.Len(),
	)
	return pages, nil
}

// sameHostPaths filters raw hrefs down to request paths on the crawl
// host. Relative links resolve against the site root; absolute links to
// other hosts and non-HTTP schemes are dropped. Fragments are removed so
// anchors on the same page do not count as new paths.
func (s *Spider) sameHostPaths(hrefs []string) []string {
	paths := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" || href == "#" {
			continue
		}

		u, err := url.Parse(href)
		if err != nil {
			continue
		}
		if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
			continue
		}
		if u.Host != "" && !strings.EqualFold(u.Hostname(), s.host) {
			continue
		}

		u.Fragment = ""
		path := u.RequestURI()
		if path == "" || !strings.HasPrefix(path, "/") {
			continue
		}
		if s.ignored(path) {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// ignored reports whether a path matches any configured ignore pattern.
func (s *Spider) ignored(path string) bool {
	for _, pattern := range s.ignorePatterns {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
