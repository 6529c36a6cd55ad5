package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	cfg := NewConfig()
	cfg.Username = "alice"
	cfg.Password = "pw123"
	return cfg
}

// TestNewConfig tests default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Server != DefaultServer {
		t.Errorf("Server = %q", cfg.Server)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.CrawlDepth != 0 {
		t.Errorf("CrawlDepth = %d, want 0", cfg.CrawlDepth)
	}
	if cfg.MaxPages != DefaultMaxPages {
		t.Errorf("MaxPages = %d", cfg.MaxPages)
	}
}

// TestConfigValidate tests validation sentinels.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config passes",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing username",
			mutate:  func(c *Config) { c.Username = "" },
			wantErr: ErrNoCredentials,
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.Password = "" },
			wantErr: ErrNoCredentials,
		},
		{
			name:    "empty server",
			mutate:  func(c *Config) { c.Server = "" },
			wantErr: ErrNoServer,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: ErrInvalidPort,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative crawl depth",
			mutate:  func(c *Config) { c.CrawlDepth = -1 },
			wantErr: ErrInvalidCrawlDepth,
		},
		{
			name:    "zero max pages",
			mutate:  func(c *Config) { c.MaxPages = 0 },
			wantErr: ErrInvalidMaxPages,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadConfigFile tests YAML site-config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads sites and defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `defaults:
  depth: 2
sites:
  fakebook.example.edu:
    depth: 5
    maxPages: 10
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		site := cf.ForServer("fakebook.example.edu")
		if site.Depth != 5 || site.MaxPages != 10 {
			t.Errorf("site config = %+v", site)
		}

		other := cf.ForServer("other.example.edu")
		if other.Depth != 2 || other.MaxPages != 0 {
			t.Errorf("defaults not applied: %+v", other)
		}
	})

	t.Run("missing file yields ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("sites: [not a map"), 0600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestApplySiteConfig tests overlaying per-server settings.
func TestApplySiteConfig(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server = "fakebook.example.edu"
	cfg.SiteConfigs = &File{
		Sites: map[string]SiteConfig{
			"fakebook.example.edu": {
				Depth:          3,
				MaxPages:       7,
				IgnorePatterns: []string{"/logout"},
			},
		},
	}

	cfg.ApplySiteConfig()
	if cfg.CrawlDepth != 3 {
		t.Errorf("CrawlDepth = %d, want 3", cfg.CrawlDepth)
	}
	if cfg.MaxPages != 7 {
		t.Errorf("MaxPages = %d, want 7", cfg.MaxPages)
	}
	if len(cfg.IgnorePatterns) != 1 || cfg.IgnorePatterns[0] != "/logout" {
		t.Errorf("IgnorePatterns = %v", cfg.IgnorePatterns)
	}
}

// TestLoadCredentialsFromEnv tests environment credential loading.
func TestLoadCredentialsFromEnv(t *testing.T) {
	// Mutates the process environment; no t.Parallel.
	t.Setenv(EnvUsername, "envuser")
	t.Setenv(EnvPassword, "envpass")

	username, password := LoadCredentialsFromEnv()
	if username != "envuser" || password != "envpass" {
		t.Errorf("credentials = %q/%q", username, password)
	}
}
