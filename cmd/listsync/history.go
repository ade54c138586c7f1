package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"listsync/internal/config"
	"listsync/internal/runlog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent reconciliation runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// History needs only the local database, not the remote services.
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	runs, err := runlog.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer runs.Close()

	recent, err := runs.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-20s %-24s %8s %10s %10s %6s\n", "STARTED", "LIST", "MATCHED", "UNMATCHED", "REQUESTED", "COVER")
	for _, r := range recent {
		coverMark := "-"
		if r.CoverUploaded {
			coverMark = "yes"
		}
		fmt.Printf("%-20s %-24s %8d %10d %10d %6s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(r.ListName, 24),
			r.Matched, r.Unmatched, r.Requested, coverMark)
		if len(r.UnmatchedTitles) > 0 {
			fmt.Printf("    unmatched: %s\n", strings.Join(r.UnmatchedTitles, ", "))
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
