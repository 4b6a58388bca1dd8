//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"lms-api/cmd/bootstrap"
	"lms-api/cmd/bootstrap/components"
	"lms-api/internal/infra/cache"
	"lms-api/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, codec string) (*gin.Engine, cache.Store, config.Config) {
	redisInfo := startContainers(t)

	router, store, cfg, app := buildE2EApp(redisInfo, codec)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"redis_host", redisInfo.Host,
		"redis_port", redisInfo.Port.Port())

	return router, store, cfg
}

// ------------------------------------------------------------
// Container start
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")

	return redisInfo
}

// ------------------------------------------------------------
// Application wiring for e2e tests
// Returns router, cache store, config and fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(redisInfo ContainerInfo, codec string) (*gin.Engine, cache.Store, config.Config, *fx.App) {
	var router *gin.Engine
	var store cache.Store
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(redisInfo, codec)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &store, &cfg),

		// start without fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, store, cfg, app
}

func createTestConfig(redisInfo ContainerInfo, codec string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Cache.Driver = config.CacheDriverRedis
	testConfig.Cache.Codec = codec
	testConfig.Cache.RedisAddr = net.JoinHostPort(redisInfo.Host, redisInfo.Port.Port())
	testConfig.Cache.RedisDialTimeout = 5 * time.Second
	testConfig.Cache.RedisReadTimeout = 3 * time.Second
	testConfig.Cache.RedisWriteTimeout = 3 * time.Second
	testConfig.Cache.RedisPoolSize = 10
	return testConfig
}

// ------------------------------------------------------------
// Common container start
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the Redis container once and reuse it
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd: []string{
				"redis-server",
				"--save", "", // no RDB snapshots
				"--appendonly", "no", // no AOF
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("6379/tcp"),
				wait.ForLog("Ready to accept connections"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  cache.Store
	Config config.Config
	// Codec selects the record encoding; empty means json.
	Codec string
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, store, cfg := setupE2EEnvironment(t, s.Codec)
	s.Router = router
	s.Store = store
	s.Config = cfg
	require.NotNil(t, s.Store, "failed to set up cache store")
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
