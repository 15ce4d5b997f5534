package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces session keys in Redis.
const redisKeyPrefix = "eso:session:"

// RedisStore implements Store on Redis. Expiry rides on the key TTL, so
// DeleteExpired has nothing to do here.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis session store and verifies connectivity.
func NewRedisStore(ctx context.Context, client *redis.Client) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Create persists a new session with a TTL matching its expiry.
func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if sess.IsExpired() || sess.Token == "" {
		s.client.Del(ctx, redisKeyPrefix+id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

// UpdateBalance rewrites the session with the new balance, keeping the
// remaining TTL. A missing session is a no-op.
func (s *RedisStore) UpdateBalance(ctx context.Context, id string, balance int) error {
	sess, err := s.Get(ctx, id)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	sess.User.VbucksBalance = balance

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.client.Set(ctx, redisKeyPrefix+id, data, ttl).Err()
}

// Delete removes a session by ID.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

// DeleteExpired is a no-op: Redis evicts expired keys on its own.
func (s *RedisStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
