package storage

import (
	"context"
	"errors"
	"fmt"

	"estatehub/internal/common/database"

	"github.com/redis/go-redis/v9"
)

// Redis adapts the shared RedisClient to the KV contract. Keys are stored
// without expiration; client state survives restarts until overwritten.
type Redis struct {
	client *database.RedisClient
}

// NewRedis wraps an already-connected redis client.
func NewRedis(client *database.RedisClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
