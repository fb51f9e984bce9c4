package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Slot keys for the two persisted records.
const (
	TodosKey = "todos"
	MenuKey  = "menu"
)

// Backend is a durable string store with two outcomes on read: absent
// (ok == false) and present, possibly empty.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// IOError wraps a failed backend read or write.
type IOError struct {
	Op  string
	Key string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Open creates the backend named by cfg.
func Open(cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(cfg.Backend()) {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath(), cfg.Prefix())
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr(),
			DB:   cfg.RedisDB(),
		})
		return NewRedis(client, cfg.Prefix()), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}
