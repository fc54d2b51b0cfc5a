package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

// Redis is a shared Cache backed by go-redis, for an API deployment
// running multiple replicas behind a load balancer.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client. prefix namespaces keys (e.g.
// "jsonrepair:cache:").
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(text string) string {
	return r.prefix + KeyFor(text)
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, text string) (*repair.RepairReport, bool, error) {
	raw, err := r.client.Get(ctx, r.key(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report repair.RepairReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, text string, report *repair.RepairReport, ttl time.Duration) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(text), raw, ttl).Err()
}
