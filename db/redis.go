package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const RateLimitKeyPrefix = "venturemind:ratelimit:analyze:"

// ConnectRedis returns a nil client when url is empty; callers treat that as "feature off".
func ConnectRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
