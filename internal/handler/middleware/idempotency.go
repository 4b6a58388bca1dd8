package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"lms-api/internal/infra/cache"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	MaxIdempotencyKeyLen = 255

	problemContentType = "application/problem+json"
	problemTypeBadReq  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"

	detailKeyMissing = "Idempotency-Key header is required for this endpoint"
	detailKeyLength  = "Idempotency-Key header must be between 1 and 255 characters"
)

// IdempotencyPolicy is attached to a route in the router's route table.
type IdempotencyPolicy int

const (
	IdempotencyNone IdempotencyPolicy = iota
	IdempotencyRequired
	IdempotencyOptional
)

func (p IdempotencyPolicy) String() string {
	switch p {
	case IdempotencyRequired:
		return "required"
	case IdempotencyOptional:
		return "optional"
	default:
		return "none"
	}
}

// RoutePolicies is the per-route policy table, keyed by RouteKey.
type RoutePolicies map[string]IdempotencyPolicy

func RouteKey(method, fullPath string) string {
	return method + " " + fullPath
}

func (p RoutePolicies) Lookup(method, fullPath string) IdempotencyPolicy {
	return p[RouteKey(method, fullPath)]
}

// IdempotencyRecord is the cached snapshot of a successful response.
type IdempotencyRecord struct {
	Key         string            `json:"key" msgpack:"key"`
	StatusCode  int               `json:"statusCode" msgpack:"statusCode"`
	ContentType string            `json:"contentType" msgpack:"contentType"`
	Headers     map[string]string `json:"headers" msgpack:"headers"`
	Body        []byte            `json:"body" msgpack:"body"`
	CreatedAt   time.Time         `json:"createdAt" msgpack:"createdAt"`
}

// ProblemDetails is the RFC 7807 body returned for rejected keys.
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// IdempotencyGate replays the stored response of a POST whose
// Idempotency-Key was already served successfully.
//
// Without single-flight, two concurrent first requests with the same key
// may both run the handler; the later successful one overwrites the record.
type IdempotencyGate struct {
	store  cache.Store
	codec  cache.Codec
	clock  clock.Clock
	logger *slog.Logger

	prefix string
	ttl    time.Duration

	singleFlight bool
	flight       singleflight.Group
}

func NewIdempotencyGate(store cache.Store, codec cache.Codec, clk clock.Clock, logger *slog.Logger, cfg config.IdempotencyConfig) *IdempotencyGate {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdempotencyGate{
		store:        store,
		codec:        codec,
		clock:        clk,
		logger:       logger,
		prefix:       cfg.KeyPrefix,
		ttl:          cfg.TTL,
		singleFlight: cfg.SingleFlight,
	}
}

// Middleware resolves the matched route in policies and applies its policy.
// Unmatched and unlisted routes pass through.
func (g *IdempotencyGate) Middleware(policies RoutePolicies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g.handle(c, policies.Lookup(c.Request.Method, c.FullPath()))
	}
}

// Handle applies a fixed policy, for use directly in a route's handler chain.
func (g *IdempotencyGate) Handle(policy IdempotencyPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		g.handle(c, policy)
	}
}

func (g *IdempotencyGate) handle(c *gin.Context, policy IdempotencyPolicy) {
	if policy == IdempotencyNone || c.Request.Method != http.MethodPost {
		c.Next()
		return
	}

	key := c.GetHeader(HeaderIdempotencyKey)
	if key == "" {
		if policy == IdempotencyOptional {
			c.Next()
			return
		}
		g.reject(c, detailKeyMissing)
		return
	}
	if utf8.RuneCountInString(key) > MaxIdempotencyKeyLen {
		g.reject(c, detailKeyLength)
		return
	}

	cacheKey := g.prefix + key
	if rec, ok := g.lookup(c.Request.Context(), cacheKey); ok {
		g.replay(c, rec)
		return
	}

	if g.singleFlight {
		g.runShared(c, key, cacheKey)
		return
	}

	if rec := g.execute(c, key); rec != nil {
		g.save(c.Request.Context(), cacheKey, rec)
	}
}

func (g *IdempotencyGate) reject(c *gin.Context, detail string) {
	g.logger.Warn("Idempotency key rejected",
		slog.String("path", c.Request.URL.Path),
		slog.String("detail", detail))

	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(http.StatusBadRequest, ProblemDetails{
		Type:   problemTypeBadReq,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}

// lookup treats backend and decoding failures as a miss.
func (g *IdempotencyGate) lookup(ctx context.Context, cacheKey string) (*IdempotencyRecord, bool) {
	data, ok, err := g.store.Get(ctx, cacheKey)
	if err != nil {
		g.logger.Error("Idempotency cache lookup failed",
			slog.String("cache_key", cacheKey),
			slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var rec IdempotencyRecord
	if err := g.codec.Unmarshal(data, &rec); err != nil {
		g.logger.Error("Idempotency record is unreadable",
			slog.String("cache_key", cacheKey),
			slog.Any("error", err))
		return nil, false
	}
	return &rec, true
}

func (g *IdempotencyGate) save(ctx context.Context, cacheKey string, rec *IdempotencyRecord) {
	data, err := g.codec.Marshal(rec)
	if err == nil {
		err = g.store.Set(ctx, cacheKey, data, g.ttl)
	}
	if err != nil {
		g.logger.Error("Idempotency record not stored",
			slog.String("cache_key", cacheKey),
			slog.Any("error", err))
	}
}

func (g *IdempotencyGate) replay(c *gin.Context, rec *IdempotencyRecord) {
	g.logger.Info("Replaying idempotent response",
		slog.String("idempotency_key", rec.Key),
		slog.Int("status_code", rec.StatusCode),
		slog.Time("created_at", rec.CreatedAt))

	h := c.Writer.Header()
	for k, v := range rec.Headers {
		h.Set(k, v)
	}
	if rec.ContentType != "" {
		h.Set("Content-Type", rec.ContentType)
	}

	c.Writer.WriteHeader(rec.StatusCode)
	if len(rec.Body) == 0 {
		c.Writer.WriteHeaderNow()
	} else {
		_, _ = c.Writer.Write(rec.Body)
	}
	c.Abort()
}

// execute runs the rest of the chain against a capture writer, forwards the
// result to the client and returns a record when the response is cacheable.
func (g *IdempotencyGate) execute(c *gin.Context, key string) *IdempotencyRecord {
	original := c.Writer
	capture := newCaptureWriter(original)
	c.Writer = capture
	// restored on panic too, so recovery writes to the real client
	defer func() { c.Writer = original }()

	c.Next()

	c.Writer = original
	if !capture.produced() {
		// outer middleware renders the response; keep what the handler set
		h := original.Header()
		for k, v := range capture.header {
			h[k] = append([]string(nil), v...)
		}
		return nil
	}
	capture.flush(original)

	if !capture.succeeded() {
		return nil
	}
	return &IdempotencyRecord{
		Key:         key,
		StatusCode:  capture.status,
		ContentType: capture.header.Get("Content-Type"),
		Headers:     capture.snapshotHeaders(),
		Body:        append([]byte(nil), capture.body.Bytes()...),
		CreatedAt:   g.clock.Now(),
	}
}

// runShared lets one request per key execute the handler while concurrent
// callers with the same key wait and replay its result.
func (g *IdempotencyGate) runShared(c *gin.Context, key, cacheKey string) {
	ctx := c.Request.Context()
	executed := false
	v, _, _ := g.flight.Do(cacheKey, func() (any, error) {
		// an earlier flight may have saved the record after our first lookup
		if rec, ok := g.lookup(ctx, cacheKey); ok {
			return rec, nil
		}
		executed = true
		rec := g.execute(c, key)
		if rec != nil {
			g.save(ctx, cacheKey, rec)
		}
		return rec, nil
	})
	if executed {
		return
	}

	if rec, _ := v.(*IdempotencyRecord); rec != nil {
		g.replay(c, rec)
		return
	}
	// leader's response was not cacheable; run this request on its own
	if rec := g.execute(c, key); rec != nil {
		g.save(ctx, cacheKey, rec)
	}
}
