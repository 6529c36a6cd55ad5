package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultServer is the host the crawler targets when none is given.
	DefaultServer = "fakebook.khoury.northeastern.edu"

	// DefaultPort is the HTTPS port.
	DefaultPort = 443

	// DefaultTimeout bounds each connection establishment. The login
	// exchange itself has no read timeout: a response that never comes
	// blocks the run, which is acceptable for a single-shot tool.
	DefaultTimeout = 30 * time.Second

	// DefaultCrawlDepth of 0 disables link traversal: the tool scans only
	// the post-login page, the original single-shot behavior.
	DefaultCrawlDepth = 0

	// DefaultMaxPages bounds the crawl loop when a depth is set, keeping
	// runaway link graphs from turning one run into thousands of fetches.
	DefaultMaxPages = 100

	// AppName is the application name used for XDG directory paths.
	AppName = "webcrawler"
)

// Config holds all options for one crawl run.
// It is populated from CLI flags plus the optional config file and passed
// through the application via dependency injection rather than global
// state.
type Config struct {
	// Server is the hostname to crawl.
	Server string

	// Port is the TLS port on Server.
	Port int

	// Username and Password are the login credentials, from positional
	// arguments or the environment.
	Username string
	Password string

	// ProxyAddress, when set, routes connections through a SOCKS5 proxy
	// in "host:port" form.
	ProxyAddress string

	// Timeout bounds connection establishment per request.
	Timeout time.Duration

	// CrawlDepth is the maximum link depth to follow after login.
	// 0 means scan only the post-login page.
	CrawlDepth int

	// MaxPages is the maximum number of pages to fetch during traversal.
	MaxPages int

	// IgnorePatterns lists path substrings the spider skips, such as
	// logout links.
	IgnorePatterns []string

	// Verbose enables debug-level logging.
	Verbose bool

	// ConfigFilePath is an explicit config file path; empty means search
	// the working and home directories for the default file name.
	ConfigFilePath string

	// SiteConfigs holds per-server overrides loaded from the config file.
	SiteConfigs *File

	// JSONReport and MarkdownReport select the report format.
	// Both false means the human-readable simple report.
	// Mutually exclusive.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile, when set, writes the report there instead of stdout.
	ReportFile string

	// DBDir is the directory holding the crawl-history database.
	DBDir string

	// SaveToDB controls whether the completed report is recorded.
	SaveToDB bool
}

// NewConfig creates a Config with defaults for every field that has one.
//
// Design decision: A constructor rather than zero values because most
// defaults are non-zero, and this doubles as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		Server:     DefaultServer,
		Port:       DefaultPort,
		Timeout:    DefaultTimeout,
		CrawlDepth: DefaultCrawlDepth,
		MaxPages:   DefaultMaxPages,
	}
}

// XDGDataDir returns the XDG data directory for the crawler.
// On Linux: ~/.local/share/webcrawler
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks the configuration, returning the first problem found.
// It runs once after CLI parsing, before any network activity.
func (c *Config) Validate() error {
	if c.Username == "" || c.Password == "" {
		return ErrNoCredentials
	}
	if c.Server == "" {
		return ErrNoServer
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.CrawlDepth < 0 {
		return ErrInvalidCrawlDepth
	}
	if c.MaxPages < 1 {
		return ErrInvalidMaxPages
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ApplySiteConfig overlays per-server overrides from the loaded config
// file onto the run configuration. CLI-level values win only where the
// site config is silent.
func (c *Config) ApplySiteConfig() {
	if c.SiteConfigs == nil {
		return
	}
	site := c.SiteConfigs.ForServer(c.Server)
	if site.Depth > 0 {
		c.CrawlDepth = site.Depth
	}
	if site.MaxPages > 0 {
		c.MaxPages = site.MaxPages
	}
	if len(site.IgnorePatterns) > 0 {
		c.IgnorePatterns = site.IgnorePatterns
	}
}
