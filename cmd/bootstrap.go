package cmd

import (
	"context"
	"fmt"

	"world-crawler/core/config"
	"world-crawler/core/database"
	"world-crawler/core/logger"
	"world-crawler/core/metrics"
	"world-crawler/core/storage"
	"world-crawler/core/vrchat"
	"world-crawler/feature/favorite"
	"world-crawler/feature/favorite/crawler"
	"world-crawler/feature/favorite/normalize"
	"world-crawler/feature/favorite/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateAnnotation set to "false" marks a read-only command that must not
// alter the schema.
const migrateAnnotation = "migrate"

// migrates reports whether cmd migrates the favorite_world table on startup.
func migrates(cmd *cobra.Command) bool {
	return cmd.Annotations[migrateAnnotation] != "false"
}

// app is the wired crawler shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	crawler *crawler.Crawler
	metrics *metrics.Metrics
	service *favorite.Service
}

// bootstrap loads the configuration and wires the store, archive, listing
// client and crawler. The favorite_world table is migrated when migrate is set.
func bootstrap(ctx context.Context, migrate bool) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	st := store.New(db, logg)
	if migrate {
		if err := st.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	var archive *crawler.Archive
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Archive bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
		archive = crawler.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
	}

	m := metrics.New()
	c := crawler.New(vrchat.NewClient(cfg.Remote, logg), archive, normalize.New(), st, m, logg)

	return &app{
		cfg:     cfg,
		logger:  logg,
		crawler: c,
		metrics: m,
		service: favorite.NewService(st, c, logg),
	}, nil
}
