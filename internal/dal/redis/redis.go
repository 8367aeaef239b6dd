package redis

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// Client represents a Redis client.
type Client struct {
	rdb *redis.Client
}

// DB returns the underlying Redis client.
func (c *Client) DB() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection for graceful shutdown.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// MustNewClient creates a new Redis client.
func MustNewClient() *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:6379", os.Getenv("STOREFRONT_REDIS_HOST")),
		Password: os.Getenv("STOREFRONT_REDIS_PASSWORD"),
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	return &Client{
		rdb: rdb,
	}
}
