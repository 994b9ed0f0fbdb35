package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

// RedisOptions configures the Redis backend.
type RedisOptions struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisBackend stores entries under "<prefix>:<namespace>:<key>".
type RedisBackend struct {
	rdb    redis.UniversalClient
	prefix string
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisClient initializes a redis client.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})
}

// NewRedisBackend wraps an existing client. The backend owns the client and
// closes it on Close.
func NewRedisBackend(rdb redis.UniversalClient, prefix string) *RedisBackend {
	return &RedisBackend{rdb: rdb, prefix: prefix}
}

// Ping checks connectivity. Start-up uses it to log a degraded cache early;
// the service keeps running without Redis either way.
func (b *RedisBackend) Ping(ctx context.Context) error {
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}
	return nil
}

func (b *RedisBackend) Get(ctx context.Context, ns Namespace, key string) ([]byte, bool, error) {
	res, err := b.rdb.Get(ctx, b.key(ns, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrUnavailable, err)
	}
	return res, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, ns Namespace, key string, value []byte, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, b.key(ns, key), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrUnavailable, err)
	}
	return nil
}

func (b *RedisBackend) EvictNamespace(ctx context.Context, ns Namespace) error {
	return b.deleteMatching(ctx, b.prefix+":"+string(ns)+":*")
}

func (b *RedisBackend) EvictAll(ctx context.Context) error {
	return b.deleteMatching(ctx, b.prefix+":*")
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}

func (b *RedisBackend) key(ns Namespace, key string) string {
	return b.prefix + ":" + string(ns) + ":" + key
}

// deleteMatching walks the keyspace with SCAN and deletes in batches, so a
// large namespace never blocks Redis the way KEYS would.
func (b *RedisBackend) deleteMatching(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := b.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("%w: scan %s: %v", ErrUnavailable, pattern, err)
		}
		if len(keys) > 0 {
			if err := b.rdb.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: unlink: %v", ErrUnavailable, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
