package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/config"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	"github.com/KirkDiggler/herald-bot/internal/storage/migrations"
	"github.com/KirkDiggler/herald-bot/internal/storage/postgres"
	"github.com/KirkDiggler/herald-bot/internal/storage/sqlite"
)

// StoreKind names the backend holding characters
type StoreKind string

const (
	StorePostgres StoreKind = "postgres"
	StoreRedis    StoreKind = "redis"
	StoreSQLite   StoreKind = "sqlite"
	StoreMemory   StoreKind = "memory"

	// InMemoryPath disables the SQLite file store
	InMemoryPath = ":memory:"

	pingTimeout = 5 * time.Second
)

// Store is the character repository chosen from config plus the connections
// behind it
type Store struct {
	Kind       StoreKind
	Characters *characters.CachedRepository
	// Redis is set whenever REDIS_URL connects, even if another backend holds
	// characters, so rate limits can share it
	Redis redis.UniversalClient

	ping    func(ctx context.Context) error
	closers []func() error
}

// OpenStore picks the character store: Postgres when DATABASE_URL is set,
// then Redis, then SQLite at DATABASE_PATH, then memory. Relational stores
// are migrated before use.
func OpenStore(ctx context.Context, cfg *config.Config, clk clock.Clock, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &Store{ping: func(context.Context) error { return nil }}

	if cfg.Redis.URL != "" {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without it", zap.Error(err))
		} else {
			store.Redis = client
			store.closers = append(store.closers, client.Close)
		}
	}

	var (
		repo characters.Repository
		err  error
	)
	switch {
	case cfg.Database.URL != "":
		repo, err = store.openPostgres(ctx, cfg.Database.URL, logger)
	case store.Redis != nil:
		store.Kind = StoreRedis
		client := store.Redis
		store.ping = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		repo = characters.NewRedis(client)
	case cfg.Database.Path != "" && cfg.Database.Path != InMemoryPath:
		repo, err = store.openSQLite(ctx, cfg.Database.Path, logger)
	default:
		store.Kind = StoreMemory
		repo = characters.NewInMemoryRepository()
	}
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	store.Characters = characters.NewCached(repo, characters.CacheConfig{
		MaxSize: cfg.Cache.MaxSize,
		TTL:     cfg.Cache.TTL,
		Clock:   clk,
	})

	logger.Info("character store ready", zap.String("store", string(store.Kind)))
	return store, nil
}

func (s *Store) openPostgres(ctx context.Context, url string, logger *zap.Logger) (characters.Repository, error) {
	status, err := migrations.UpPostgres(url)
	if err != nil {
		return nil, err
	}
	logger.Info("postgres migrated", zap.Uint("version", status.Version), zap.Bool("changed", status.Changed))

	pool, err := postgres.NewPool(ctx, url)
	if err != nil {
		return nil, err
	}

	s.Kind = StorePostgres
	s.ping = func(ctx context.Context) error { return pool.Health(ctx, pingTimeout) }
	s.closers = append(s.closers, func() error {
		pool.Close()
		return nil
	})
	return characters.NewPostgres(pool.DB()), nil
}

func (s *Store) openSQLite(ctx context.Context, path string, logger *zap.Logger) (characters.Repository, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, db.Close)

	status, err := migrations.UpSQLite(db)
	if err != nil {
		return nil, err
	}
	logger.Info("sqlite migrated",
		zap.String("path", path),
		zap.Uint("version", status.Version),
		zap.Bool("changed", status.Changed))

	s.Kind = StoreSQLite
	s.ping = func(ctx context.Context) error { return pingSQL(ctx, db) }
	return characters.NewSQLite(db), nil
}

// Ping reports whether the backing store is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases every connection in reverse order of opening
func (s *Store) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func connectRedis(ctx context.Context, url string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeInvalidArgument, "invalid REDIS_URL")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, herr.WrapWithCode(err, herr.CodeUnavailable, "failed to connect to redis")
	}

	return client, nil
}

func pingSQL(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return herr.WrapWithCode(err, herr.CodeUnavailable, "sqlite ping failed")
	}
	return nil
}
