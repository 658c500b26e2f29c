package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/redis/go-redis/v9"
)

type RedisI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisBlobR struct {
	client RedisI
	prefix string
}

func NewRedisBlobRepository(client RedisI, prefix string) *RedisBlobR {
	return &RedisBlobR{client: client, prefix: prefix}
}

func (r *RedisBlobR) Blob(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("blob %q: %w", key, models.ErrNotFound)
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}
	return data, nil
}

func (r *RedisBlobR) SaveBlob(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}
