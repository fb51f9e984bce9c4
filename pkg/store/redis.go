package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis keeps each slot as a plain string key.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	k := r.prefix + key
	v, err := r.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &IOError{Op: "read", Key: k, Err: err}
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	k := r.prefix + key
	if err := r.client.Set(ctx, k, value, 0).Err(); err != nil {
		return &IOError{Op: "write", Key: k, Err: err}
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
