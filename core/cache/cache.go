package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/logger"
)

// Cache wraps the redis client used for cross-request counters.
type Cache struct {
	client *redis.Client
}

func New(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis initialized", "addr", cfg.Addr)
	return &Cache{client: client}, nil
}

// Incr atomically increments the counter at key and returns the new value.
func (c *Cache) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// SetMax raises the counter at key to at least val without lowering it.
func (c *Cache) SetMax(ctx context.Context, key string, val int64) error {
	script := redis.NewScript(`
		local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
		if tonumber(ARGV[1]) > cur then
			redis.call("SET", KEYS[1], ARGV[1])
		end
		return 1
	`)
	return script.Run(ctx, c.client, []string{key}, val).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
