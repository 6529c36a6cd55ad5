package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/arsemag/Web-Crawler/internal/model"
)

// CrawlDB provides SQLite-based storage for crawl reports.
//
// Design decision: We keep a single database file for all servers rather
// than one file per target. A crawl run is small (one report row), and a
// single file makes the history command and backup trivial.
type CrawlDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CrawlDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CrawlDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CrawlDB, error) {
	dbPath := filepath.Join(dbDir, "webcrawler.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating a
	// new file, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CrawlDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CrawlDB) Close() error {
	return cdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CrawlDB) createTables() error {
	schema := `
	-- Crawl reports store complete run results as JSON plus a few
	-- indexed columns for listing.
	CREATE TABLE IF NOT EXISTS crawl_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		server TEXT NOT NULL,
		username TEXT NOT NULL,
		started_at TEXT NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		pages_visited INTEGER NOT NULL,
		flags TEXT,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_server ON crawl_reports(server);
	CREATE INDEX IF NOT EXISTS idx_reports_started ON crawl_reports(started_at);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport saves a complete crawl report.
func (cdb *CrawlDB) SaveReport(ctx context.Context, report *model.CrawlReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	flagsJSON, err := json.Marshal(report.Flags)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize flags: %w", err)
	}

	query := `
	INSERT INTO crawl_reports (server, username, started_at, elapsed_ms, pages_visited, flags, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := cdb.db.ExecContext(ctx, query,
		report.Server,
		report.Username,
		report.StartedAt.UTC().Format(time.RFC3339),
		report.Elapsed.Milliseconds(),
		report.PagesVisited,
		string(flagsJSON),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save crawl report: %w", err)
	}

	return result.LastInsertId()
}

// ReportRecord contains summary information about a stored crawl report.
// This is used for displaying crawl history without loading the full report.
type ReportRecord struct {
	// ID is the unique identifier of the report in the database.
	ID int64

	// Server is the hostname that was crawled.
	Server string

	// Username is the account the crawl logged in as.
	Username string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Elapsed is the total run duration.
	Elapsed time.Duration

	// PagesVisited is the number of pages fetched.
	PagesVisited int

	// Flags contains the secret flags found during the run.
	Flags []string
}

// ListReports retrieves stored report summaries, newest first.
// A limit of zero or less returns all reports.
func (cdb *CrawlDB) ListReports(ctx context.Context, limit int) ([]ReportRecord, error) {
	query := `
	SELECT id, server, username, started_at, elapsed_ms, pages_visited, flags
	FROM crawl_reports
	ORDER BY started_at DESC, id DESC
	`
	args := make([]interface{}, 0)

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var results []ReportRecord
	for rows.Next() {
		var rec ReportRecord
		var startedAt string
		var elapsedMS int64
		var flagsJSON sql.NullString

		if err := rows.Scan(
			&rec.ID,
			&rec.Server,
			&rec.Username,
			&startedAt,
			&elapsedMS,
			&rec.PagesVisited,
			&flagsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report record: %w", err)
		}

		rec.StartedAt = parseTimestamp(startedAt)
		rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond

		if flagsJSON.Valid && flagsJSON.String != "" {
			if err := json.Unmarshal([]byte(flagsJSON.String), &rec.Flags); err != nil {
				rec.Flags = nil
			}
		}

		results = append(results, rec)
	}

	return results, rows.Err()
}

// GetReportByID retrieves a full crawl report by its database ID.
// Returns nil without error when no report has that ID.
func (cdb *CrawlDB) GetReportByID(ctx context.Context, id int64) (*model.CrawlReport, error) {
	query := `
	SELECT report_json FROM crawl_reports
	WHERE id = ?
	`

	var reportJSON string
	err := cdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crawl report: %w", err)
	}

	var report model.CrawlReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// LatestReportForServer retrieves the most recent report for a server.
// Returns nil without error when the server has never been crawled.
func (cdb *CrawlDB) LatestReportForServer(ctx context.Context, server string) (*model.CrawlReport, error) {
	query := `
	SELECT report_json FROM crawl_reports
	WHERE server = ?
	ORDER BY started_at DESC, id DESC
	LIMIT 1
	`

	var reportJSON string
	err := cdb.db.QueryRowContext(ctx, query, server).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crawl report: %w", err)
	}

	var report model.CrawlReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05", // SQLite default datetime format
	"2006-01-02T15:04:05",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
