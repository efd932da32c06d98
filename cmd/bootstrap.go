package cmd

import (
	"context"
	"fmt"

	"market-board/core/config"
	"market-board/core/database"
	"market-board/core/loader"
	"market-board/core/logger"
	"market-board/core/reference"
	"market-board/core/storage"
	"market-board/core/worlds"
	"market-board/feature/content"
	"market-board/feature/market"
	"market-board/feature/sources"
	"market-board/feature/stats"
	"market-board/feature/upload"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every subcommand needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
}

func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &runtime{cfg: cfg, logger: logg}, nil
}

func (r *runtime) connect() (*gorm.DB, error) {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	return db, nil
}

// storageClient is only created when the configuration needs one.
func (r *runtime) storageClient(required bool) (storage.Client, error) {
	if !required {
		return nil, nil
	}
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// resolver fetches the reference tables from the configured source.
func (r *runtime) resolver(ctx context.Context) (*worlds.Resolver, error) {
	ref := r.cfg.Reference
	if !ref.IsValidSource() {
		return nil, fmt.Errorf("unsupported reference source: %s", ref.Source)
	}

	client, err := r.storageClient(ref.Source == reference.SourceS3)
	if err != nil {
		return nil, err
	}
	fetcher, err := reference.NewFetcher(ref, client, r.cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	tables, err := worlds.Load(ctx, fetcher, ref.WorldsFile, ref.DataCentersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}
	r.logger.Info("Reference tables loaded",
		zap.String("source", ref.Source),
		zap.Int("worlds", len(tables.Worlds())),
	)
	return worlds.NewResolver(tables), nil
}

// features wires every HTTP feature. The upload feature shares the services
// of the market, stats and content features.
func features(logg *zap.Logger, db *gorm.DB, resolver *worlds.Resolver, cfg *config.Config) *loader.Manager {
	marketFeature := market.NewFeature(logg, db, resolver, cfg.Market)
	statsFeature := stats.NewFeature(logg, db, resolver, cfg.Stats)
	contentFeature := content.NewFeature(logg, db)

	mgr := loader.NewManager(logg)
	mgr.Register(marketFeature)
	mgr.Register(statsFeature)
	mgr.Register(contentFeature)
	mgr.Register(upload.NewFeature(logg,
		sources.NewService(logg, db),
		marketFeature.Service(),
		statsFeature.Service(),
		contentFeature.Service(),
	))
	return mgr
}
