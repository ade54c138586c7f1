package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"listsync/internal/list"
)

var coverCmd = &cobra.Command{
	Use:   "cover [flags] <list.yaml>",
	Short: "Regenerate a collection's mosaic cover",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverCmd,
}

func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.Flags().Bool("force", false, "Replace an existing cover")
}

func runCoverCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

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

	if !force {
		has, err := a.catalog.HasPrimaryImage(ctx, collectionID)
		if err != nil {
			return err
		}
		if has {
			fmt.Println("Collection already has a cover; use --force to replace it")
			return nil
		}
	}

	data, err := a.composer.BuildCover(ctx, collectionID, l.Name)
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Println("No member posters available; no cover produced")
		return nil
	}
	if err := a.catalog.UploadPrimaryImage(ctx, collectionID, data, "image/jpeg"); err != nil {
		return err
	}
	fmt.Printf("Uploaded cover for %q (%d bytes)\n", l.Name, len(data))
	return nil
}
