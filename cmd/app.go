package cmd

import (
	"context"
	"errors"
	"fmt"

	"deviceinfocompare/core/config"
	"deviceinfocompare/core/database"
	"deviceinfocompare/core/logger"
	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/archive"
	"deviceinfocompare/feature/dumps"
	"deviceinfocompare/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application bundles the dependencies shared by the commands.
type application struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *gorm.DB
	enum  inventory.Enumerator
	dumps *dumps.Service
}

// newApplication loads configuration, opens the dump database and prepares
// the dump service. Live enumeration is optional: on unsupported platforms
// only stored dumps can be used.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := dumps.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	if missing, err := repo.VerifySchema(ctx); err != nil {
		l.Warn("Schema verification failed", zap.Error(err))
	} else if len(missing) > 0 {
		l.Warn("Device table is missing columns", zap.Strings("columns", missing))
	}

	enum, err := inventory.NewEnumerator(cfg.Inventory, l)
	if err != nil {
		if !errors.Is(err, inventory.ErrUnsupportedPlatform) {
			_ = database.Close(db)
			return nil, err
		}
		l.Debug("Live enumeration unavailable", zap.Error(err))
	}

	return &application{
		cfg:   cfg,
		log:   l,
		db:    db,
		enum:  enum,
		dumps: dumps.NewService(repo, enum, l),
	}, nil
}

// archive returns the archive service backed by the configured bucket.
func (a *application) archive() (*archive.Service, error) {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return archive.NewService(client, a.cfg.Storage.Bucket, a.dumps, a.log), nil
}

func (a *application) Close() {
	_ = a.log.Sync()
	if err := database.Close(a.db); err != nil {
		a.log.Warn("Failed to close database", zap.Error(err))
	}
}
