package data

import (
	"context"
	"time"

	"cinemadia/internal/biz"
	"cinemadia/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewTransaction,
	NewMovieRepo,
	NewVoteRepo,
	NewReviewRepo,
	NewLibraryRepo,
	NewHistoryRepo,
	NewUserRepo,
	NewSessionRepo,
	NewMediaStore,
	NewCatalogClient,
)

// Data encapsulates database and cache connections
type Data struct {
	db  *gorm.DB
	rdb *redis.Client
	log *log.Helper
}

// NewData creates Data instance with database and Redis connections
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	db, err := gorm.Open(postgres.Open(c.Database.Source), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		l.Errorf("failed to connect to database: %v", err)
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		l.Errorf("failed to get database instance: %v", err)
		return nil, nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	l.Info("database connected successfully")

	if c.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			l.Errorf("failed to migrate schema: %v", err)
			return nil, nil, err
		}
		l.Info("schema migrated")
	}

	var rdb *redis.Client
	if c.Redis != nil && c.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Network:      c.Redis.Network,
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			DB:           c.Redis.Db,
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// Redis is optional, continue without it
			l.Warnf("failed to connect to redis: %v", err)
			_ = rdb.Close()
			rdb = nil
		} else {
			l.Info("redis connected successfully")
		}
	}

	data := &Data{
		db:  db,
		rdb: rdb,
		log: l,
	}

	cleanup := func() {
		l.Info("closing data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
		if err := sqlDB.Close(); err != nil {
			l.Errorf("failed to close database: %v", err)
		}
	}

	return data, cleanup, nil
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Movie{},
		&User{},
		&UserProfile{},
		&Favorite{},
		&Watchlist{},
		&Review{},
		&ReviewLike{},
		&WatchHistory{},
		&MovieVote{},
		&Session{},
	)
}

type txKey struct{}

// DB returns the transaction carried by ctx, or the pool when there is none.
func (d *Data) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return d.db.WithContext(ctx)
}

type transaction struct {
	data *Data
}

// NewTransaction exposes database transactions to the biz layer.
func NewTransaction(data *Data) biz.Transaction {
	return &transaction{data: data}
}

// InTx runs fn in a transaction. Nested calls join the outer transaction.
func (t *transaction) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.data.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
