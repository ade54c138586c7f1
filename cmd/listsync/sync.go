package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"listsync/internal/engine"
	"listsync/internal/list"
)

var syncCmd = &cobra.Command{
	Use:   "sync [flags] <list.yaml>...",
	Short: "Reconcile one or more lists into their collections",
	Long: `Reconcile one or more lists into their collections.

Each list file is resolved to its collection, every item is matched and
added, unmatched items are forwarded to the request service, and the
collection cover is regenerated.

Examples:
  listsync sync imdb-top-250.yaml
  listsync sync --clear watchlist.yaml
  listsync sync --schedule "0 3 * * *" imdb-top-250.yaml watchlist.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSyncCmd,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("clear", false, "Empty the collection before reconciling")
	syncCmd.Flags().Bool("skip-cover", false, "Skip cover generation")
	syncCmd.Flags().Bool("force-cover", false, "Regenerate the cover even if one exists")
	syncCmd.Flags().String("schedule", "", "Cron schedule; keep running and sync on every tick")
}

func runSyncCmd(cmd *cobra.Command, args []string) error {
	clearFirst, _ := cmd.Flags().GetBool("clear")
	skipCover, _ := cmd.Flags().GetBool("skip-cover")
	forceCover, _ := cmd.Flags().GetBool("force-cover")
	schedule, _ := cmd.Flags().GetString("schedule")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lists := make([]*list.List, 0, len(args))
	for _, path := range args {
		l, err := list.Load(path)
		if err != nil {
			return err
		}
		lists = append(lists, l)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := engine.Options{
		ClearBeforeSync: clearFirst || a.cfg.Sync.ClearBeforeSync,
		SkipCover:       skipCover,
		ForceCover:      forceCover,
	}

	if schedule == "" {
		schedule = a.cfg.Sync.Schedule
	}
	if schedule != "" {
		syncAll(ctx, a, lists, opts)
		return engine.RunOnSchedule(ctx, schedule, a.log, func(ctx context.Context) {
			syncAll(ctx, a, lists, opts)
		})
	}

	failed := syncAll(ctx, a, lists, opts)
	if failed > 0 {
		return fmt.Errorf("%d item(s) failed to reconcile", failed)
	}
	return nil
}

// syncAll reconciles every list and returns the total unreconciled item
// count.
func syncAll(ctx context.Context, a *app, lists []*list.List, opts engine.Options) int {
	var failed int
	for _, l := range lists {
		summary, err := a.engine.SyncList(ctx, l, opts)
		if err != nil {
			a.log.Error("list sync failed", "list", l.Name, "error", err)
			failed += len(l.Items)
			continue
		}
		failed += summary.Unmatched
	}
	return failed
}
