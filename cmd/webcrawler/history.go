package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arsemag/Web-Crawler/internal/config"
	"github.com/arsemag/Web-Crawler/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past crawl runs from the history database",
		Long: `History lists past crawl runs recorded in the local database.

Each run shows the server, the account used, when it started, how long
it took, how many pages were visited, and the flags found.

Examples:
  # Show the most recent runs
  webcrawler history

  # Show only the last five runs
  webcrawler history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 20,
		"Maximum number of runs to show (0 shows all)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	// History never creates the database; an empty history is not an error
	// worth a new file on disk.
	db, err := database.Open(config.XDGDataDir(), database.Options{CreateIfNotExists: false})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No crawl history recorded yet.")
		return nil
	}
	defer db.Close()

	records, err := db.ListReports(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list crawl history: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No crawl history recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		flags := "-"
		if len(rec.Flags) > 0 {
			flags = strings.Join(rec.Flags, ", ")
		}
		fmt.Fprintf(out, "#%d  %s  %s@%s  %s  %d pages  flags: %s\n",
			rec.ID,
			rec.StartedAt.Format("2006-01-02 15:04:05"),
			rec.Username,
			rec.Server,
			rec.Elapsed,
			rec.PagesVisited,
			flags,
		)
	}

	return nil
}
