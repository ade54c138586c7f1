package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// RunOnSchedule invokes fn on the given cron schedule until the context is
// canceled. The first tick runs at the schedule's next boundary, not
// immediately; callers wanting an initial run perform it before scheduling.
func RunOnSchedule(ctx context.Context, spec string, log *slog.Logger, fn func(context.Context)) error {
	if log == nil {
		log = slog.Default()
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		fn(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	log.Info("scheduler started", "schedule", spec)
	c.Start()
	<-ctx.Done()

	stopped := c.Stop()
	<-stopped.Done() // wait for an in-flight run to finish
	log.Info("scheduler stopped")
	return nil
}
