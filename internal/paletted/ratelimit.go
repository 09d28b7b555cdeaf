package paletted

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RateLimitConfig defines a token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustainable rate (tokens added per second).
	RequestsPerSecond float64

	// BurstSize is the maximum number of requests allowed in a burst.
	BurstSize int
}

// DefaultRateLimits caps writes well below reads.
var DefaultRateLimits = map[string]RateLimitConfig{
	FullMethod(MethodAssignPalette): {RequestsPerSecond: 20, BurstSize: 40},

	FullMethod(MethodListPalettes):   {RequestsPerSecond: 100, BurstSize: 200},
	FullMethod(MethodResolveClasses): {RequestsPerSecond: 500, BurstSize: 1000},

	FullMethod(MethodGetStatus): {RequestsPerSecond: 1000, BurstSize: 1000},
	FullMethod(MethodPing):      {RequestsPerSecond: 1000, BurstSize: 1000},
}

type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	lastUpdate time.Time
	ratePerSec float64
	maxTokens  float64
	requests   int64
	denied     int64
}

func newTokenBucket(cfg RateLimitConfig) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(cfg.BurstSize),
		lastUpdate: time.Now(),
		ratePerSec: cfg.RequestsPerSecond,
		maxTokens:  float64(cfg.BurstSize),
	}
}

// refill must be called with mu held.
func (tb *tokenBucket) refill(now time.Time) {
	tb.tokens += now.Sub(tb.lastUpdate).Seconds() * tb.ratePerSec
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastUpdate = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.requests++
	tb.refill(time.Now())

	if tb.tokens >= 1.0 {
		tb.tokens--
		return true
	}
	tb.denied++
	return false
}

func (tb *tokenBucket) stats() (available float64, requests, denied int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(time.Now())
	return tb.tokens, tb.requests, tb.denied
}

// RateLimiter keeps one token bucket per gRPC method plus an optional
// global bucket.
type RateLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	configs map[string]RateLimitConfig
	enabled bool

	global       *tokenBucket
	globalConfig *RateLimitConfig
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithMethodLimits overrides limits for specific methods.
func WithMethodLimits(limits map[string]RateLimitConfig) RateLimiterOption {
	return func(rl *RateLimiter) {
		for method, cfg := range limits {
			rl.configs[method] = cfg
		}
	}
}

// WithGlobalLimit adds a bucket shared by every method.
func WithGlobalLimit(cfg RateLimitConfig) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.globalConfig = &cfg
		rl.global = newTokenBucket(cfg)
	}
}

// WithEnabled enables or disables rate limiting.
func WithEnabled(enabled bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.enabled = enabled
	}
}

// NewRateLimiter creates a limiter seeded with DefaultRateLimits.
func NewRateLimiter(opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		configs: make(map[string]RateLimitConfig),
		enabled: true,
	}
	for method, cfg := range DefaultRateLimits {
		rl.configs[method] = cfg
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow reports whether a call to method may proceed.
func (rl *RateLimiter) Allow(method string) bool {
	if !rl.IsEnabled() {
		return true
	}
	if rl.global != nil && !rl.global.allow() {
		return false
	}

	bucket := rl.bucket(method)
	if bucket == nil {
		return true
	}
	return bucket.allow()
}

func (rl *RateLimiter) bucket(method string) *tokenBucket {
	rl.mu.RLock()
	bucket, ok := rl.buckets[method]
	rl.mu.RUnlock()
	if ok {
		return bucket
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if bucket, ok = rl.buckets[method]; ok {
		return bucket
	}
	cfg, ok := rl.configs[method]
	if !ok {
		return nil
	}
	bucket = newTokenBucket(cfg)
	rl.buckets[method] = bucket
	return bucket
}

// MethodStats reports usage of one bucket.
type MethodStats struct {
	Method         string
	Available      float64
	RequestsPerSec float64
	BurstSize      int
	TotalRequests  int64
	DeniedRequests int64
}

// Stats returns statistics for every configured method.
func (rl *RateLimiter) Stats() []MethodStats {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	stats := make([]MethodStats, 0, len(rl.configs))
	for method, cfg := range rl.configs {
		ms := MethodStats{
			Method:         method,
			Available:      float64(cfg.BurstSize),
			RequestsPerSec: cfg.RequestsPerSecond,
			BurstSize:      cfg.BurstSize,
		}
		if bucket, ok := rl.buckets[method]; ok {
			ms.Available, ms.TotalRequests, ms.DeniedRequests = bucket.stats()
		}
		stats = append(stats, ms)
	}
	return stats
}

// GlobalStats returns statistics for the global bucket, or nil.
func (rl *RateLimiter) GlobalStats() *MethodStats {
	if rl.global == nil || rl.globalConfig == nil {
		return nil
	}
	available, total, denied := rl.global.stats()
	return &MethodStats{
		Method:         "global",
		Available:      available,
		RequestsPerSec: rl.globalConfig.RequestsPerSecond,
		BurstSize:      rl.globalConfig.BurstSize,
		TotalRequests:  total,
		DeniedRequests: denied,
	}
}

// SetEnabled toggles rate limiting at runtime.
func (rl *RateLimiter) SetEnabled(enabled bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.enabled = enabled
}

// IsEnabled reports whether rate limiting is active.
func (rl *RateLimiter) IsEnabled() bool {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.enabled
}

// UnaryServerInterceptor rejects calls over the limit with ResourceExhausted.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow(info.FullMethod) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for method %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}
