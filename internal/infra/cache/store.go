// Package cache provides the key/value stores behind the idempotency gate.
//
// Stores hold opaque byte values with a time-to-live. Expiry is passive:
// an expired entry is simply never returned again.
package cache

import (
	"context"
	"time"

	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/config"
	"lms-api/internal/pkg/errs"
)

var ErrUnsupportedDriver = errs.New("unsupported cache driver")

// Store is safe for concurrent use by multiple goroutines.
type Store interface {
	// Get returns the live value for key. ok is false on a miss or after expiry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key. A ttl <= 0 keeps the entry until the process exits.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// NewStore builds the store selected by cfg.Driver.
func NewStore(cfg config.CacheConfig, clk clock.Clock) (Store, error) {
	switch cfg.Driver {
	case config.CacheDriverMemory:
		return NewMemoryStore(cfg.Shards, clk), nil
	case config.CacheDriverRedis:
		return NewRedisStore(cfg)
	default:
		return nil, errs.Wrapf(ErrUnsupportedDriver, "driver %q", cfg.Driver)
	}
}
