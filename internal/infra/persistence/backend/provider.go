package backend

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the key-value backend selected by storage.driver and closes it on stop.
func New(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	switch cfg.Driver {
	case constants.StorageDriverBlob:
		store, err := NewBlobStore(ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Using blob key-value store", slog.String("bucket_url", cfg.BucketURL))
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case constants.StorageDriverSQLite, constants.StorageDriverPostgres:
		return newSQLStore(ctx, params)

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

func newSQLStore(ctx context.Context, params Params) (repository.KeyValueStore, error) {
	db, err := openDatabase(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	store, err := NewGormStore(ctx, db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return store.Close()
		},
	})

	params.Logger.Info("Using SQL key-value store", slog.String("driver", params.Config.Storage.Driver))

	return store, nil
}

func openDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case constants.StorageDriverSQLite:
		dialector = sqlite.Open(cfg.Storage.DSN)
	case constants.StorageDriverPostgres:
		dialector = postgres.Open(cfg.Storage.DSN)
	default:
		return nil, errors.Errorf("unsupported SQL driver: %s", cfg.Storage.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Every write is a single upsert.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", cfg.Storage.Driver)
	}

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Key-value database pool wait", attrs...)
			}

			prev = cur
		}
	}
}
