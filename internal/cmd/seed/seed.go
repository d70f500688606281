// Package seed provisions a database for a new game: schema, starter
// wiki content and an initial staff account.
package seed

import (
	"context"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/platform/config"
	"github.com/soma-satoro/PyReach/internal/platform/logging"
	"github.com/soma-satoro/PyReach/internal/storage/sqlite"
	"github.com/soma-satoro/PyReach/internal/wiki"
)

// Config holds the seeding options.
type Config struct {
	StaffName     string
	StaffPassword string
	ContentDir    string
}

// ParseConfig reads seeding options from flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.StaffName, "staff", "", "staff account name to create")
	fs.StringVar(&cfg.StaffPassword, "password", "", "password for the staff account")
	fs.StringVar(&cfg.ContentDir, "content", "", "directory of Markdown files to import")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.StaffName != "" && cfg.StaffPassword == "" {
		return Config{}, fmt.Errorf("-staff requires -password")
	}
	return cfg, nil
}

// Run seeds the database named by the environment configuration.
func Run(ctx context.Context, cfg Config) error {
	envCfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup("", envCfg.LogLevel)

	store, err := sqlite.Open(envCfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	service := wiki.NewService(store)
	if err := service.Seed(ctx); err != nil {
		return err
	}
	if cfg.ContentDir != "" {
		if err := service.LoadContent(ctx, cfg.ContentDir); err != nil {
			return err
		}
	}

	if cfg.StaffName != "" {
		acct, err := account.New(cfg.StaffName, "", cfg.StaffPassword)
		if err != nil {
			return err
		}
		acct.Staff = true
		if err := store.CreateAccount(ctx, acct); err != nil {
			return err
		}
		log.WithField("account", acct.Name).Info("staff account created")
	}

	log.WithField("db", envCfg.DatabasePath).Info("seed complete")
	return nil
}
