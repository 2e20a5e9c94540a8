package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/apiclient/internal/buildinfo"
	"github.com/dmitrijs2005/apiclient/internal/client/cli"
	"github.com/dmitrijs2005/apiclient/internal/client/client"
	"github.com/dmitrijs2005/apiclient/internal/client/config"
	"github.com/dmitrijs2005/apiclient/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/apiclient/internal/client/session"
	"github.com/dmitrijs2005/apiclient/internal/client/storage"
	"github.com/dmitrijs2005/apiclient/internal/filex"
	"github.com/dmitrijs2005/apiclient/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	dsn := storage.MemoryDSN
	if !cfg.InMemory() {
		dir, err := filex.EnsureSubdDir(cfg.StateDir)
		if err != nil {
			return fmt.Errorf("state dir: %w", err)
		}
		dsn = cfg.DatabaseDSN(dir)
	}

	db, err := storage.OpenDatabase(ctx, dsn)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	store := session.NewSQLiteStore(db, session.WithPassphrase(cfg.TokenPassphrase))

	api, err := client.New(ctx, cfg.APIBaseURL, store,
		client.WithLogger(logger),
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithDebug(cfg.Debug),
	)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "client ready", "api_url", api.BaseURL(), "database", dsn)

	app := cli.NewApp(cli.Deps{
		API:      api,
		Sessions: store,
		History:  uploads.NewSQLiteRepository(db),
		Logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	app.Run(ctx)
	return nil
}
