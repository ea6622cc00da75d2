package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// SetExisting issues SET key value XX KEEPTTL, so an entry evicted or expired
// since it was read is not recreated without a TTL.
func (r *redisImpl) SetExisting(ctx context.Context, key string, value interface{}) (bool, error) {
	err := r.client.SetArgs(ctx, key, value, goredis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if IsNil(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}
