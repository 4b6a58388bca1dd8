package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.), security settings
// - default: Values common across all environments (timezone, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Cache       CacheConfig
	Idempotency IdempotencyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// CacheConfig selects the backing store of the idempotency cache.
// The memory driver keeps records per process; redis shares them between instances.
type CacheConfig struct {
	Driver            string        `envconfig:"CACHE_DRIVER" default:"memory"`
	Codec             string        `envconfig:"CACHE_CODEC" default:"json"`
	Shards            int           `envconfig:"CACHE_SHARDS" default:"32"`
	RedisAddr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword     string        `envconfig:"REDIS_PASSWORD"`
	RedisDB           int           `envconfig:"REDIS_DB" default:"0"`
	RedisDialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	RedisReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	RedisWriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
	RedisPoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type IdempotencyConfig struct {
	TTL       time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	KeyPrefix string        `envconfig:"IDEMPOTENCY_KEY_PREFIX" default:"idempotency:"`
	// SingleFlight collapses concurrent first requests sharing a key into one handler execution.
	SingleFlight bool `envconfig:"IDEMPOTENCY_SINGLE_FLIGHT" default:"false"`
}

func (c CacheConfig) Validate() error {
	switch c.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.Driver)
	}
	if c.Shards <= 0 {
		return fmt.Errorf("CACHE_SHARDS must be positive, got %d", c.Shards)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Cache.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cache: CacheConfig{
			Driver: CacheDriverMemory,
			Codec:  "json",
			Shards: 32,
		},
		Idempotency: IdempotencyConfig{
			TTL:       24 * time.Hour,
			KeyPrefix: "idempotency:",
		},
	}
}
