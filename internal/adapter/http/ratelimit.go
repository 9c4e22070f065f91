package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"traffic-exchange/internal/config/configs"
)

// RateLimiter throttles requests per authenticated user. With Redis the
// budget is shared by all instances; without it, or while Redis is
// failing, each process enforces the same limit locally.
type RateLimiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	limit    redis_rate.Limit
	logger   *slog.Logger
}

// NewRateLimiter builds a limiter from cfg. rdb may be nil.
func NewRateLimiter(rdb *redis.Client, cfg configs.RateLimit, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		fallback: newLocalLimiter(),
		limit: redis_rate.Limit{
			Rate:   cfg.Requests,
			Burst:  max(cfg.Burst, 1),
			Period: cfg.Window,
		},
		logger: logger,
	}
	if rdb != nil {
		rl.limiter = redis_rate.NewLimiter(rdb)
	}
	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:visits:" + callerID(r)
		res := rl.allow(r.Context(), key)

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(rl.limit.Rate))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := max(int(res.RetryAfter.Seconds()), 1)
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			writeRateLimited(w, retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ctx context.Context, key string) *redis_rate.Result {
	if rl.limiter != nil {
		res, err := rl.limiter.Allow(ctx, key, rl.limit)
		if err == nil {
			return res
		}
		rl.logger.WarnContext(ctx, "redis rate limiter failed, using local limiter", slog.Any("error", err))
	}
	return rl.fallback.allow(key, rl.limit)
}

func writeRateLimited(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = fmt.Fprintf(w, `{"error":{"code":"RATE_LIMITED","message":"rate limit exceeded, retry after %d seconds","retryable":true}}`+"\n", retryAfter)
}

type localLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*localEntry
	now       func() time.Time
	lastSweep time.Time
}

type localEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{limiters: make(map[string]*localEntry), now: time.Now}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) *redis_rate.Result {
	perSecond := float64(limit.Rate) / limit.Period.Seconds()

	l.mu.Lock()
	now := l.now()
	l.sweep(now, idleAfter(limit))
	e, ok := l.limiters[key]
	if !ok {
		e = &localEntry{lim: rate.NewLimiter(rate.Limit(perSecond), limit.Burst)}
		l.limiters[key] = e
	}
	e.seen = now
	l.mu.Unlock()

	res := &redis_rate.Result{Limit: limit, RetryAfter: -1}
	if e.lim.AllowN(now, 1) {
		res.Allowed = 1
	} else {
		res.RetryAfter = time.Duration(float64(time.Second) / perSecond)
	}
	res.Remaining = max(int(e.lim.TokensAt(now)), 0)
	return res
}

// sweep drops limiters idle for longer than idle, at most once per idle
// period. Callers hold l.mu.
func (l *localLimiter) sweep(now time.Time, idle time.Duration) {
	if now.Sub(l.lastSweep) < idle {
		return
	}
	l.lastSweep = now
	for key, e := range l.limiters {
		if now.Sub(e.seen) > idle {
			delete(l.limiters, key)
		}
	}
}

// idleAfter is how long a bucket takes to refill completely. A limiter idle
// that long is indistinguishable from a new one, so dropping it is safe.
func idleAfter(limit redis_rate.Limit) time.Duration {
	refill := limit.Period * time.Duration(limit.Burst) / time.Duration(max(limit.Rate, 1))
	return max(refill, limit.Period)
}
