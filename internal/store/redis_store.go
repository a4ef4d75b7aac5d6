package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
)

// RedisKeyPrefix namespaces cached game lists in Redis.
const RedisKeyPrefix = "catalog:games:"

// RedisStore keeps game lists in Redis as JSON; Redis expires entries server-side.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore parses a Redis URL (e.g. "redis://host:6379/0") and returns a store.
// Call Ping to verify the connection.
func NewRedisStore(rawURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opts)), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping checks the connection to Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key Key) (games.GameList, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	var list games.GameList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return list, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key Key, list games.GameList, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = GameListTTL
	}
	data, err := json.Marshal(cloneList(list))
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	return s.client.Set(ctx, redisKey(key), data, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key Key) error {
	return s.client.Del(ctx, redisKey(key)).Err()
}

// Clear deletes every cached list using SCAN.
func (s *RedisStore) Clear(ctx context.Context) error {
	pattern := RedisKeyPrefix + "*"
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache del pattern %s: %w", pattern, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close shuts down the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func redisKey(key Key) string {
	return RedisKeyPrefix + key.String()
}
