// The redisutils package simplifies and automates recurring operations like
// connecting to, formatting for, and parsing from Redis.
package redisutils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	ProdAddress string = "localhost:6379"
	TestAddress string = "localhost:6380"
)

// SetupClient() initializes a new Redis client connected to address.
func SetupClient(address string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: address,
	})
}

// SetupTestClient() initializes a new Redis client for testing.
func SetupTestClient() *redis.Client {
	return SetupClient(TestAddress)
}

// Ping() returns an error if the Redis server doesn't answer.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// CleanupRedis() cleans up the Redis database between tests to ensure isolation.
func CleanupRedis(client *redis.Client) {
	client.FlushAll(context.Background())
}
