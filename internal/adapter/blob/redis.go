package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores the snapshot under a single key, no TTL. SET replaces
// the whole value, which gives the same snapshot-commit semantics as
// the file backend.
type Redis struct {
	rdb *redis.Client
	key string
}

func NewRedis(rdb *redis.Client, key string) *Redis {
	return &Redis{rdb: rdb, key: key}
}

func (r *Redis) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("blob: get %s: %w", r.key, err)
	}
	return data, true, nil
}

func (r *Redis) Store(ctx context.Context, data []byte) error {
	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("blob: set %s: %w", r.key, err)
	}
	return nil
}

var _ Blob = (*Redis)(nil)
