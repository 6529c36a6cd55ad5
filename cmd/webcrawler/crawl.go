package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arsemag/Web-Crawler/internal/config"
	"github.com/arsemag/Web-Crawler/internal/crawler"
	"github.com/arsemag/Web-Crawler/internal/database"
	crawlog "github.com/arsemag/Web-Crawler/internal/log"
	"github.com/arsemag/Web-Crawler/internal/model"
	"github.com/arsemag/Web-Crawler/internal/report"
	"github.com/arsemag/Web-Crawler/internal/session"
	"github.com/arsemag/Web-Crawler/internal/transport"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [username] [password]",
		Short: "Log into the target site and hunt for secret flags",
		Long: `Crawl logs into the target site with the given credentials and scans
the resulting pages for secret flags.

The login sequence fetches the login form, submits the credentials with
the CSRF token, and follows the post-login redirect, all over a single
hand-built TLS connection. With --depth greater than zero the crawler
then walks same-host links from the post-login page.

Credentials can also come from the WEBCRAWLER_USERNAME and
WEBCRAWLER_PASSWORD environment variables or a .env file, which keeps
them out of shell history.

Examples:
  # Log in and scan the post-login page
  webcrawler crawl alice s3cret

  # Crawl the whole site up to 3 link hops deep
  webcrawler crawl -d 3 alice s3cret

  # Target a different server and port
  webcrawler crawl -s example.com -p 8443 alice s3cret

  # Route the connection through a SOCKS5 proxy
  webcrawler crawl --proxy 127.0.0.1:9050 alice s3cret

  # Output a JSON report to a file
  webcrawler crawl --json -o report.json alice s3cret

Configuration file (.webcrawler) example:
  sites:
    example.com:
      depth: 2
      max_pages: 50`,
		Args: cobra.MaximumNArgs(2),
		RunE: runCrawlCmd,
	}

	// Target flags
	cmd.Flags().StringP("server", "s", config.DefaultServer,
		"Hostname of the server to crawl")
	cmd.Flags().IntP("port", "p", config.DefaultPort,
		"TLS port on the server")
	cmd.Flags().String("proxy", "",
		"Route the connection through a SOCKS5 proxy at the given address (e.g., 127.0.0.1:9050)")

	// Crawl behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().IntP("depth", "d", config.DefaultCrawlDepth,
		"Maximum link depth to follow after login (0 scans only the post-login page)")
	cmd.Flags().Int("max-pages", config.DefaultMaxPages,
		"Maximum number of pages to fetch during traversal")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .webcrawler in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-save", false,
		"Do not record the completed run in the history database")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential masking
	logger := crawlog.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Server, err = cmd.Flags().GetString("server")
	if err != nil {
		return nil, err
	}

	cfg.Port, err = cmd.Flags().GetInt("port")
	if err != nil {
		return nil, err
	}

	cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.CrawlDepth, err = cmd.Flags().GetInt("depth")
	if err != nil {
		return nil, err
	}

	cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Credentials: positional arguments win over the environment.
	cfg.Username, cfg.Password = config.LoadCredentialsFromEnv()
	if len(args) > 0 {
		cfg.Username = args[0]
	}
	if len(args) > 1 {
		cfg.Password = args[1]
	}

	// Per-server overrides from the config file
	cfg.ApplySiteConfig()

	return cfg, nil
}

// runCrawl executes the crawl: login, optional traversal, report, save.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting crawl",
		"server", cfg.Server,
		"port", cfg.Port,
		"depth", cfg.CrawlDepth,
		"maxPages", cfg.MaxPages,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.CrawlDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	dialerOpts := []transport.Option{transport.WithTimeout(cfg.Timeout)}
	if cfg.ProxyAddress != "" {
		dialerOpts = append(dialerOpts, transport.WithProxy(cfg.ProxyAddress))
	}
	dialer, err := transport.NewDialer(dialerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create dialer: %w", err)
	}

	crawlReport := model.NewCrawlReport(cfg.Server, cfg.Username)

	// Log in over a dedicated connection
	conn, err := dialer.DialContext(ctx, cfg.Server, cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", cfg.Server, cfg.Port, err)
	}

	sequencer := session.NewSequencer(session.WithLogger(logger))
	state, err := sequencer.Run(ctx, conn, cfg.Server, cfg.Username, cfg.Password)
	if closeErr := conn.Close(); closeErr != nil {
		logger.Warn("failed to close login connection", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// The post-login page is the first page of the report
	start := &model.Page{
		Path:       state.Path,
		StatusLine: state.StatusLine,
		Body:       state.Body,
	}
	if flag, found := crawler.ExtractFlag(start.Body); found {
		start.Flag = flag
		logger.Info("flag found", "path", start.Path)
	}
	crawlReport.AddPage(start)

	// Walk same-host links when a depth is set
	if cfg.CrawlDepth > 0 {
		client := session.NewClient(dialer, cfg.Server, cfg.Port, state,
			session.WithClientLogger(logger))
		spider := crawler.NewSpider(client, cfg.Server,
			crawler.WithMaxDepth(cfg.CrawlDepth),
			crawler.WithMaxPages(cfg.MaxPages),
			crawler.WithIgnorePatterns(cfg.IgnorePatterns),
			crawler.WithSpiderLogger(logger),
		)

		pages, err := spider.Crawl(ctx, start)
		for _, page := range pages {
			crawlReport.AddPage(page)
		}
		if err != nil {
			// Partial results are still worth reporting on cancellation.
			logger.Warn("crawl ended early", "error", err, "pagesVisited", len(pages))
		}
	}

	crawlReport.Elapsed = time.Since(crawlReport.StartedAt)

	if err := outputReport(cfg, crawlReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := saveCrawlReport(ctx, db, crawlReport, logger); err != nil {
		logger.Error("failed to save crawl report", "error", err)
	}

	return nil
}

// outputReport outputs the crawl report in the requested format.
func outputReport(cfg *config.Config, crawlReport *model.CrawlReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports carry session details, so owner-only permissions.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(crawlReport)
	return err
}

// saveCrawlReport saves the crawl report to the database if enabled.
// If db is nil, this function is a no-op.
func saveCrawlReport(ctx context.Context, db *database.CrawlDB, crawlReport *model.CrawlReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	id, err := db.SaveReport(ctx, crawlReport)
	if err != nil {
		return fmt.Errorf("failed to save crawl report: %w", err)
	}

	logger.Info("crawl report saved to database", "id", id, "server", crawlReport.Server)
	return nil
}
