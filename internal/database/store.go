package database

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-admin/internal/config"
	"storefront-admin/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// Store bundles the repositories of one backend with its connection
// lifecycle
type Store struct {
	Driver     string
	Categories repository.CategoryRepository
	Banners    repository.BannerRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.Driver. Connection failures
// are returned as is; the caller decides whether they are fatal.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewMemoryStore returns a Store backed by in-process repositories
func NewMemoryStore() *Store {
	return &Store{
		Driver:     config.DriverMemory,
		Categories: repository.NewMemoryCategoryRepository(),
		Banners:    repository.NewMemoryBannerRepository(),
	}
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("MongoDB connected", zap.String("database", cfg.MongoDatabase))

	return &Store{
		Driver:     config.DriverMongo,
		Categories: repository.NewMongoCategoryRepository(db),
		Banners:    repository.NewMongoBannerRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := RunMigrations(db, cfg.MigrationsDir, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
	)

	return &Store{
		Driver:     config.DriverPostgres,
		Categories: repository.NewCategoryRepository(db),
		Banners:    repository.NewBannerRepository(db),
		ping:       db.PingContext,
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}
