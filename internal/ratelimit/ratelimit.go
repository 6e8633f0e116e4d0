package ratelimit

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"venturemind/internal/auth"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Counter counts hits on key within the current window.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter is a fixed-window counter. The window starts at the first hit.
type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, r.prefix+key)
		pipe.ExpireNX(ctx, r.prefix+key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Limiter allows limit requests per owner per window.
type Limiter struct {
	counter Counter
	limit   int64
	window  time.Duration
}

func New(counter Counter, limit int, window time.Duration) *Limiter {
	return &Limiter{counter: counter, limit: int64(limit), window: window}
}

// Middleware must run after auth. A counter failure lets the request through.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := auth.OwnerID(c)
		if ownerID == "" || l.limit <= 0 {
			c.Next()
			return
		}

		n, err := l.counter.Hit(c.Request.Context(), ownerID, l.window)
		if err != nil {
			slog.Warn("rate limiter unavailable", "owner_id", ownerID, "error", err)
			c.Next()
			return
		}

		if n > l.limit {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": model.ErrRateLimited.Error()})
			return
		}

		c.Next()
	}
}
