// Package server boots the full PyReach stack: storage, the telnet
// game, the wiki web application and the content watcher.
package server

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/soma-satoro/PyReach/internal/platform/config"
	"github.com/soma-satoro/PyReach/internal/platform/logging"
	gameserver "github.com/soma-satoro/PyReach/internal/server"
	"github.com/soma-satoro/PyReach/internal/storage/sqlite"
	"github.com/soma-satoro/PyReach/internal/web"
	"github.com/soma-satoro/PyReach/internal/wiki"
)

// Run starts every component and blocks until the context is canceled
// or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogFile, cfg.LogLevel)

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	wikiService := wiki.NewService(store)
	if err := wikiService.Seed(ctx); err != nil {
		return err
	}
	if cfg.ContentDir != "" {
		if err := wikiService.LoadContent(ctx, cfg.ContentDir); err != nil {
			return err
		}
	}

	game := gameserver.NewGame(cfg.GameName, store)
	telnet := gameserver.NewTelnet(game)
	webServer := web.New(cfg.GameName, store, wikiService, game, web.NewAuth(cfg.SessionSecret))

	log.WithFields(log.Fields{
		"game":   cfg.GameName,
		"telnet": cfg.TelnetAddr,
		"http":   cfg.HTTPAddr,
		"db":     cfg.DatabasePath,
	}).Info("starting")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return telnet.Serve(ctx, cfg.TelnetAddr) })
	group.Go(func() error { return webServer.Serve(ctx, cfg.HTTPAddr) })
	if cfg.ContentDir != "" {
		group.Go(func() error {
			err := wikiService.WatchContent(ctx, cfg.ContentDir)
			if err != nil && ctx.Err() == nil {
				// A broken watcher should not take the game down.
				log.WithError(err).Warn("content watcher stopped")
			}
			return nil
		})
	}
	return group.Wait()
}
