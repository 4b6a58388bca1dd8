//go:build unit

package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lms-api/internal/handler/middleware"
	"lms-api/internal/infra/cache"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/config"
	cachemock "lms-api/tests/mock/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IdempotencyGateTestSuite struct {
	suite.Suite
	clock  *clock.MockClock
	store  *cache.MemoryStore
	router *gin.Engine

	created  atomic.Int32
	failed   atomic.Int32
	plain    atomic.Int32
	optional atomic.Int32
	deleted  atomic.Int32
}

func TestIdempotencyGateSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyGateTestSuite))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdempotencyConfig() config.IdempotencyConfig {
	return config.IdempotencyConfig{TTL: time.Hour, KeyPrefix: "idempotency:"}
}

func (s *IdempotencyGateTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.store = cache.NewMemoryStore(4, s.clock)
	s.created.Store(0)
	s.failed.Store(0)
	s.plain.Store(0)
	s.optional.Store(0)
	s.deleted.Store(0)

	codec, err := cache.NewCodec(cache.CodecJSON)
	s.Require().NoError(err)
	gate := middleware.NewIdempotencyGate(s.store, codec, s.clock, discardLogger(), testIdempotencyConfig())
	s.router = newGateRouter(gate, &s.created, &s.failed, &s.plain, &s.optional, &s.deleted)
}

func newGateRouter(gate *middleware.IdempotencyGate, created, failed, plain, optional, deleted *atomic.Int32) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(gate.Middleware(middleware.RoutePolicies{
		middleware.RouteKey(http.MethodPost, "/items"):        middleware.IdempotencyRequired,
		middleware.RouteKey(http.MethodPost, "/items/fail"):   middleware.IdempotencyRequired,
		middleware.RouteKey(http.MethodPost, "/items/bare"):   middleware.IdempotencyRequired,
		middleware.RouteKey(http.MethodPost, "/items/panic"):  middleware.IdempotencyRequired,
		middleware.RouteKey(http.MethodPost, "/items/lazy"):   middleware.IdempotencyOptional,
		middleware.RouteKey(http.MethodPost, "/items/:id/go"): middleware.IdempotencyRequired,
	}))

	r.POST("/items", func(c *gin.Context) {
		n := created.Add(1)
		c.Header("Location", "/items/1")
		c.Header("Transfer-Encoding", "chunked")
		c.Writer.Header().Add("X-Trace", "a")
		c.Writer.Header().Add("X-Trace", "b")
		c.JSON(http.StatusCreated, gin.H{"n": n})
	})
	r.POST("/items/fail", func(c *gin.Context) {
		n := failed.Add(1)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"n": n})
	})
	r.POST("/items/bare", func(c *gin.Context) {
		deleted.Add(1)
		c.Status(http.StatusNoContent)
	})
	r.POST("/items/panic", func(_ *gin.Context) {
		failed.Add(1)
		panic("boom")
	})
	r.POST("/items/lazy", func(c *gin.Context) {
		n := optional.Add(1)
		c.JSON(http.StatusCreated, gin.H{"n": n})
	})
	r.POST("/items/plain", func(c *gin.Context) {
		n := plain.Add(1)
		c.JSON(http.StatusOK, gin.H{"n": n})
	})
	r.GET("/items", gate.Handle(middleware.IdempotencyRequired), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func post(router http.Handler, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func counter(w *httptest.ResponseRecorder) int {
	var body struct {
		N int `json:"n"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		return -1
	}
	return body.N
}

func (s *IdempotencyGateTestSuite) assertProblem(w *httptest.ResponseRecorder, detailPart string) {
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "application/problem+json")

	var p middleware.ProblemDetails
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	s.Equal("https://tools.ietf.org/html/rfc7231#section-6.5.1", p.Type)
	s.Equal("Bad Request", p.Title)
	s.Equal(http.StatusBadRequest, p.Status)
	s.Contains(p.Detail, detailPart)
}

// ================================================================================
// Replay
// ================================================================================

func (s *IdempotencyGateTestSuite) TestReplay() {
	s.Run("same key replays the first response without running the handler", func() {
		first := post(s.router, "/items", "key-1")
		s.Equal(http.StatusCreated, first.Code)
		s.Equal(1, counter(first))

		second := post(s.router, "/items", "key-1")
		s.Equal(http.StatusCreated, second.Code)
		s.Equal(first.Body.String(), second.Body.String())
		s.Equal("/items/1", second.Header().Get("Location"))
		s.Equal("a,b", second.Header().Get("X-Trace"))
		s.Equal(first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
		s.Empty(second.Header().Get("Transfer-Encoding"))
		s.Equal(int32(1), s.created.Load())
	})

	s.Run("different keys execute independently", func() {
		a := post(s.router, "/items", "key-a")
		b := post(s.router, "/items", "key-b")
		s.NotEqual(counter(a), counter(b))
	})

	s.Run("status-only response is cached and replayed", func() {
		first := post(s.router, "/items/bare", "bare-1")
		second := post(s.router, "/items/bare", "bare-1")

		s.Equal(http.StatusNoContent, first.Code)
		s.Equal(http.StatusNoContent, second.Code)
		s.Empty(second.Body.Bytes())
		s.Equal(int32(1), s.deleted.Load())
	})
}

// ================================================================================
// Key validation
// ================================================================================

func (s *IdempotencyGateTestSuite) TestKeyValidation() {
	s.Run("required route without key is rejected", func() {
		w := post(s.router, "/items", "")
		s.assertProblem(w, "required")
		s.Equal(int32(0), s.created.Load())
	})

	s.Run("key longer than 255 characters is rejected", func() {
		w := post(s.router, "/items", strings.Repeat("k", middleware.MaxIdempotencyKeyLen+1))
		s.assertProblem(w, "between 1 and 255")
		s.Equal(int32(0), s.created.Load())
	})

	s.Run("key of exactly 255 characters is accepted", func() {
		w := post(s.router, "/items", strings.Repeat("k", middleware.MaxIdempotencyKeyLen))
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("optional route with an over-long key is rejected", func() {
		w := post(s.router, "/items/lazy", strings.Repeat("k", middleware.MaxIdempotencyKeyLen+1))
		s.assertProblem(w, "between 1 and 255")
		s.Equal(int32(0), s.optional.Load())
	})
}

// ================================================================================
// Policies
// ================================================================================

func (s *IdempotencyGateTestSuite) TestPolicies() {
	s.Run("optional route without key executes every time", func() {
		first := post(s.router, "/items/lazy", "")
		second := post(s.router, "/items/lazy", "")
		s.Equal(1, counter(first))
		s.Equal(2, counter(second))
	})

	s.Run("optional route with key replays", func() {
		first := post(s.router, "/items/lazy", "opt-1")
		second := post(s.router, "/items/lazy", "opt-1")
		s.Equal(counter(first), counter(second))
	})

	s.Run("unannotated route ignores the header", func() {
		first := post(s.router, "/items/plain", "plain-1")
		second := post(s.router, "/items/plain", "plain-1")
		s.Equal(1, counter(first))
		s.Equal(2, counter(second))
	})

	s.Run("non-POST methods pass through", func() {
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("policy string form", func() {
		s.Equal("required", middleware.IdempotencyRequired.String())
		s.Equal("optional", middleware.IdempotencyOptional.String())
		s.Equal("none", middleware.IdempotencyNone.String())
	})
}

// ================================================================================
// Caching rules
// ================================================================================

func (s *IdempotencyGateTestSuite) TestCachingRules() {
	s.Run("non-2xx responses are not cached", func() {
		first := post(s.router, "/items/fail", "fail-1")
		second := post(s.router, "/items/fail", "fail-1")

		s.Equal(http.StatusUnprocessableEntity, first.Code)
		s.Equal(http.StatusUnprocessableEntity, second.Code)
		s.Equal(2, counter(second))
	})

	s.Run("panicking handler is recovered and nothing is cached", func() {
		s.failed.Store(0)
		first := post(s.router, "/items/panic", "panic-1")
		second := post(s.router, "/items/panic", "panic-1")

		s.Equal(http.StatusInternalServerError, first.Code)
		s.Equal(http.StatusInternalServerError, second.Code)
		s.Equal(int32(2), s.failed.Load())
	})

	s.Run("record expires after the ttl", func() {
		first := post(s.router, "/items", "ttl-1")
		s.clock.Add(59 * time.Minute)
		replayed := post(s.router, "/items", "ttl-1")
		s.Equal(counter(first), counter(replayed))

		s.clock.Add(2 * time.Minute)
		fresh := post(s.router, "/items", "ttl-1")
		s.Equal(counter(first)+1, counter(fresh))
	})

	s.Run("records are stored under the configured prefix", func() {
		post(s.router, "/items", "prefixed")
		_, ok, err := s.store.Get(s.T().Context(), "idempotency:prefixed")
		s.Require().NoError(err)
		s.True(ok)
	})
}

// ================================================================================
// Cache failures
// ================================================================================

func newMockedGate(t *testing.T, store cache.Store, cfg config.IdempotencyConfig) (*gin.Engine, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	codec, err := cache.NewCodec(cache.CodecJSON)
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	var created, failed, plain, optional, deleted atomic.Int32
	gate := middleware.NewIdempotencyGate(store, codec, clk, discardLogger(), cfg)
	return newGateRouter(gate, &created, &failed, &plain, &optional, &deleted), &created
}

func TestIdempotencyGate_CacheFailures(t *testing.T) {
	t.Run("lookup error is treated as a miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cachemock.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "idempotency:k").
			Return(nil, false, errors.New("connection refused")).Times(2)
		store.EXPECT().Set(gomock.Any(), "idempotency:k", gomock.Any(), time.Hour).
			Return(nil).Times(2)

		r, created := newMockedGate(t, store, testIdempotencyConfig())
		first := post(r, "/items", "k")
		second := post(r, "/items", "k")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, int32(2), created.Load())
	})

	t.Run("store error still delivers the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cachemock.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("OOM command not allowed"))

		r, _ := newMockedGate(t, store, testIdempotencyConfig())
		w := post(r, "/items", "k")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, counter(w))
		assert.Equal(t, "/items/1", w.Header().Get("Location"))
	})

	t.Run("unreadable record is treated as a miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cachemock.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("not a record"), true, nil)
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		r, created := newMockedGate(t, store, testIdempotencyConfig())
		w := post(r, "/items", "k")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int32(1), created.Load())
	})

	t.Run("rejected keys never reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cachemock.NewMockStore(ctrl)

		r, _ := newMockedGate(t, store, testIdempotencyConfig())
		w := post(r, "/items", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdempotencyGate_CacheFailureLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	store := cachemock.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("connection refused"))
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("OOM command not allowed"))

	var buf bytes.Buffer
	codec, err := cache.NewCodec(cache.CodecJSON)
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	gate := middleware.NewIdempotencyGate(store, codec, clk, slog.New(slog.NewTextHandler(&buf, nil)), testIdempotencyConfig())

	var created, failed, plain, optional, deleted atomic.Int32
	r := newGateRouter(gate, &created, &failed, &plain, &optional, &deleted)
	w := post(r, "/items", "k")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "OOM command not allowed")
}

func TestIdempotencyGate_AbortKeepsHandlerHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	store := cache.NewMemoryStore(4, clk)
	codec, err := cache.NewCodec(cache.CodecJSON)
	require.NoError(t, err)
	gate := middleware.NewIdempotencyGate(store, codec, clk, discardLogger(), testIdempotencyConfig())

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/quota", gate.Handle(middleware.IdempotencyRequired), func(c *gin.Context) {
		c.Header("Retry-After", "30")
		_ = c.Error(errors.New("quota exceeded"))
		c.Abort()
	})

	w := post(r, "/quota", "k")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Zero(t, store.Len())
}

// ================================================================================
// Single-flight
// ================================================================================

func TestIdempotencyGate_SingleFlight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	store := cache.NewMemoryStore(4, clk)
	codec, err := cache.NewCodec(cache.CodecMsgpack)
	require.NoError(t, err)

	cfg := testIdempotencyConfig()
	cfg.SingleFlight = true
	gate := middleware.NewIdempotencyGate(store, codec, clk, discardLogger(), cfg)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	r := gin.New()
	r.POST("/slow", gate.Handle(middleware.IdempotencyRequired), func(c *gin.Context) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		c.JSON(http.StatusCreated, gin.H{"n": calls.Load()})
	})

	const concurrent = 8
	results := make([]*httptest.ResponseRecorder, concurrent)
	var wg sync.WaitGroup
	for i := range concurrent {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = post(r, "/slow", "shared-key")
		}()
	}

	<-started
	// let the remaining requests join the in-flight call
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, w := range results {
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, counter(w))
	}

	again := post(r, "/slow", "shared-key")
	assert.Equal(t, 1, counter(again))
	assert.Equal(t, int32(1), calls.Load())
}

// staleStore reports a miss for the first lookup after a write, the way a
// read that raced a concurrent save observes the cache.
type staleStore struct {
	cache.Store

	mu      sync.Mutex
	stale   bool
	written bool
}

func (s *staleStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	if s.written && !s.stale {
		s.stale = true
		s.mu.Unlock()
		return nil, false, nil
	}
	s.mu.Unlock()
	return s.Store.Get(ctx, key)
}

func (s *staleStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.Store.Set(ctx, key, value, ttl)
	s.mu.Lock()
	s.written = true
	s.mu.Unlock()
	return err
}

func TestIdempotencyGate_SingleFlightRechecksCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	store := &staleStore{Store: cache.NewMemoryStore(4, clk)}
	codec, err := cache.NewCodec(cache.CodecJSON)
	require.NoError(t, err)

	cfg := testIdempotencyConfig()
	cfg.SingleFlight = true
	gate := middleware.NewIdempotencyGate(store, codec, clk, discardLogger(), cfg)

	var calls atomic.Int32
	r := gin.New()
	r.POST("/orders", gate.Handle(middleware.IdempotencyRequired), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"n": calls.Add(1)})
	})

	first := post(r, "/orders", "late-key")
	// misses the outer lookup, then finds the saved record inside the flight
	second := post(r, "/orders", "late-key")

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, counter(first), counter(second))
	assert.True(t, store.stale)
}
