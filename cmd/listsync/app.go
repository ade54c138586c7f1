package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"listsync/internal/collection"
	"listsync/internal/config"
	"listsync/internal/cover"
	"listsync/internal/engine"
	"listsync/internal/jellyfin"
	"listsync/internal/match"
	"listsync/internal/runlog"
	"listsync/internal/seerr"
)

// app holds the wired components for one invocation.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	catalog  *jellyfin.Client
	engine   *engine.Engine
	runs     *runlog.Store
	resolver *collection.Resolver
	reconcil *collection.Reconciler
	composer *cover.Composer
}

// newApp loads config and constructs every component. Construction probes
// both services; any failure here is fatal before reconciliation begins.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	catalog, err := jellyfin.New(ctx, cfg.Jellyfin.URL, cfg.Jellyfin.APIKey, cfg.Jellyfin.UserID,
		jellyfin.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("jellyfin: %w", err)
	}

	var requester engine.Requester
	if cfg.Seerr != nil {
		seerrClient, err := seerr.New(ctx, cfg.Seerr.URL, seerr.Credentials{
			APIKey:   cfg.Seerr.APIKey,
			Email:    cfg.Seerr.Email,
			Password: cfg.Seerr.Password,
			UserType: cfg.Seerr.UserType,
		}, seerr.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("jellyseerr: %w", err)
		}
		requester = seerrClient
	}

	matcherOpts := []match.MatcherOption{match.WithLogger(log)}
	if !cfg.Sync.YearFilterEnabled() {
		matcherOpts = append(matcherOpts, match.WithoutYearFilter())
	}
	matcher := match.NewMatcher(catalog, matcherOpts...)

	resolver := collection.NewResolver(catalog, log)
	reconciler := collection.NewReconciler(catalog, matcher, log)
	composer := cover.NewComposer(catalog, cover.NewMosaic(), log,
		cover.WithLimit(cfg.Sync.CoverLimit))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	runs, err := runlog.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("run log: %w", err)
	}

	eng := engine.New(resolver, reconciler, requester, composer, catalog, runs, log)

	return &app{
		cfg:      cfg,
		log:      log,
		catalog:  catalog,
		engine:   eng,
		runs:     runs,
		resolver: resolver,
		reconcil: reconciler,
		composer: composer,
	}, nil
}

// Close releases held resources.
func (a *app) Close() {
	if a.runs != nil {
		_ = a.runs.Close()
	}
}
