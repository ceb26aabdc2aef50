package profile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Cache.Get when nothing is stored.
var ErrCacheMiss = errors.New("profile cache miss")

type Cache interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Set(ctx context.Context, p Profile, ttl time.Duration) error
	Del(ctx context.Context, userID string) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func cacheKey(userID string) string {
	return "profile:" + userID
}

func (c *RedisCache) Get(ctx context.Context, userID string) (Profile, error) {
	data, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Profile{}, ErrCacheMiss
	}
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (c *RedisCache) Set(ctx context.Context, p Profile, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(p.User.ID), data, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, userID string) error {
	return c.client.Del(ctx, cacheKey(userID)).Err()
}
