// Package ratelimit provides the per-client request limiter applied to the
// AI endpoints. It uses an in-memory store by default and switches to Redis
// when REDIS_URL is set, so multiple instances share one budget.
package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/TCUnion/power/internal/logger"
)

// 30 requests per minute per client IP; generous for a chat UI, tight
// enough to keep a stuck client from draining the AI budget
const aiRateFormat = "30-M"

// Middleware builds the gin rate-limit middleware for the AI routes.
// redisURL may be empty, in which case limits are tracked per instance.
func Middleware(redisURL string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(aiRateFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid rate format: %w", err)
	}

	store, err := newStore(redisURL)
	if err != nil {
		return nil, err
	}

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		logger.Info("rate limiter using in-memory store")
		return memory.NewStore(), nil
	}

	opts, err := libredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := libredis.NewClient(opts)

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "tcu_power_ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate-limit store: %w", err)
	}

	logger.Info("rate limiter using redis store")

	return store, nil
}
