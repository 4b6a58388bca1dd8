package cache

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"lms-api/internal/pkg/config"
	"lms-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const redisMaxRetries = 3

// RedisStore shares cached values between processes. Expiry is delegated to
// Redis key TTLs.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.CacheConfig) (*RedisStore, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, errs.New("redis address is empty")
	}

	opt := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{Timeout: cfg.RedisDialTimeout}
			return dialer.DialContext(ctx, network, addr)
		},
		MaxRetries:   redisMaxRetries,
		DialTimeout:  cfg.RedisDialTimeout,
		ReadTimeout:  cfg.RedisReadTimeout,
		WriteTimeout: cfg.RedisWriteTimeout,
		PoolSize:     cfg.RedisPoolSize,
	}

	return &RedisStore{client: redis.NewClient(opt)}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return errs.Wrap(s.client.Ping(ctx).Err(), "failed to ping redis")
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrapf(err, "failed to get %q from redis", key)
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errs.Wrapf(err, "failed to set %q in redis", key)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
