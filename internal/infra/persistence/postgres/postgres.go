package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"petfeeder/config"
	"petfeeder/internal/domain/lifecycle"
	"petfeeder/internal/errors"
	"petfeeder/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolWaitWarnAtLeast = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the feeder database. The pool is pinged, optionally migrated and
// then sampled for connection waits while the app runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-step writes go through txManager.Execute; single statements
	// need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	db.Config.TranslateError = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap postgres pool")
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if params.Config.Database.AutoMigrate {
				if err := AutoMigrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("feeder schema migrated")
			}

			go samplePool(sampleCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampling()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// AutoMigrate creates or updates every feeder table.
func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.All()...), "migrate schema")
}

func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaits(prev, cur); waited {
				logger.LogAttrs(ctx, level, "postgres pool callers waited for a connection", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaits compares two pool samples. It reports false when nobody waited in
// between.
func poolWaits(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAtLeast {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("max_open", cur.MaxOpenConnections),
	}, true
}
