package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"listsync/internal/list"
)

var clearCmd = &cobra.Command{
	Use:   "clear <list.yaml>",
	Short: "Remove every member from a list's collection",
	Long: `Remove every member from a list's collection.

The collection itself, its tags, and its description are left in place.
Removal is best-effort: failed batches are logged and not retried.`,
	Args: cobra.ExactArgs(1),
	RunE: runClearCmd,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClearCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l, err := list.Load(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	collectionID, err := a.resolver.ResolveOrCreate(ctx, l.Name, l.ID, l.Description, l.Source)
	if err != nil {
		return err
	}
	return a.reconcil.Clear(ctx, collectionID)
}
