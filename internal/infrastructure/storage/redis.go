// internal/infrastructure/storage/redis.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "freshify"

// RedisStore is the remote-shared substrate backed by Redis. Each entry is a
// JSON document under "freshify:<kind>:<ownerID>".
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(ownerID string, kind Kind) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, kind, ownerID)
}

// Get retrieves and unmarshals a value
func (s *RedisStore) Get(ctx context.Context, ownerID string, kind Kind, dest interface{}) error {
	data, err := s.client.Get(ctx, redisKey(ownerID, kind)).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s/%s: %w", kind, ownerID, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("redis get %s/%s: decode: %w", kind, ownerID, err)
	}
	return nil
}

// Set marshals and stores a value without expiration
func (s *RedisStore) Set(ctx context.Context, ownerID string, kind Kind, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis set %s/%s: encode: %w", kind, ownerID, err)
	}

	if err := s.client.Set(ctx, redisKey(ownerID, kind), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s/%s: %w", kind, ownerID, err)
	}
	return nil
}

// Delete removes a value; absent keys are not an error
func (s *RedisStore) Delete(ctx context.Context, ownerID string, kind Kind) error {
	if err := s.client.Del(ctx, redisKey(ownerID, kind)).Err(); err != nil {
		return fmt.Errorf("redis delete %s/%s: %w", kind, ownerID, err)
	}
	return nil
}

// Keys scans for all owner identifiers that have a value of the given kind
func (s *RedisStore) Keys(ctx context.Context, kind Kind) ([]string, error) {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, kind)
	prefix := fmt.Sprintf("%s:%s:", keyPrefix, kind)

	var owners []string
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		owners = append(owners, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s: %w", kind, err)
	}
	return owners, nil
}
