package config

// SiteConfig holds per-server overrides for crawl behavior.
type SiteConfig struct {
	// Depth overrides the crawl depth for this server.
	// Zero means use the run-level depth.
	Depth int `yaml:"depth,omitempty"`

	// MaxPages overrides the page limit for this server.
	// Zero means use the run-level limit.
	MaxPages int `yaml:"maxPages,omitempty"`

	// IgnorePatterns lists path substrings to skip during traversal,
	// such as logout links that would end the session.
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`
}

// File represents the structure of the .webcrawler configuration file.
type File struct {
	// Sites maps server hostnames to their overrides.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults applies to every server unless overridden per site.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// ForServer returns the merged configuration for a server: defaults
// overlaid with the server's own entry where its fields are set.
func (cf *File) ForServer(server string) SiteConfig {
	result := cf.Defaults
	site, ok := cf.Sites[server]
	if !ok {
		return result
	}
	if site.Depth > 0 {
		result.Depth = site.Depth
	}
	if site.MaxPages > 0 {
		result.MaxPages = site.MaxPages
	}
	if len(site.IgnorePatterns) > 0 {
		result.IgnorePatterns = site.IgnorePatterns
	}
	return result
}
