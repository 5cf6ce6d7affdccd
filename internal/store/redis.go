package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// ErrNotFound is returned when a key does not exist in the store
var ErrNotFound = errors.New("store: key not found")

// KV is the key-value contract consumed by the result cache and the rate
// limiter. All values carry a TTL enforced by the store itself.
type KV interface {
	// Get returns the value for key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given TTL
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// TTL returns the remaining lifetime of key
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Delete removes key
	Delete(ctx context.Context, key string) error

	// CountRequest atomically increments the counter under key and sets its
	// TTL if the key has none yet, returning the new count. Used for
	// per-client rate limiting; the two steps run in a single transaction so
	// concurrent requests from the same client cannot race between the
	// existence check and the increment.
	CountRequest(ctx context.Context, key string, window time.Duration) (int64, error)

	// Ping checks connectivity
	Ping(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}

// RedisStore implements KV on top of go-redis
type RedisStore struct {
	client *redis.Client
	logger types.Logger
}

// NewRedisStore creates the shared Redis client. The store is constructed
// once at process start and injected into every component that needs it.
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr: "localhost:6379",
			DB:   cfg.Redis.DB,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisStore{
		client: redis.NewClient(opts),
		logger: logging.GetGlobalLogger(),
	}
}

// Get returns the value for key, or ErrNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores value under key with the given TTL
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// TTL returns the remaining lifetime of key
func (s *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.client.TTL(ctx, key).Result()
}

// Delete removes key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// CountRequest atomically increments the counter and arms its TTL when absent
func (s *RedisStore) CountRequest(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Ping checks connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
