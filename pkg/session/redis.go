package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const storeRedis = "redis"

// RedisStore keeps view state in Redis.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a store backed by redisClient.
func NewRedisStore(redisClient *redis.Client) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis: redisClient,
	}
}

// Load retrieves the view state for key.
// Returns ErrStateMiss if the key doesn't exist or the state is expired.
func (s *RedisStore) Load(ctx context.Context, key Key) (*ViewState, error) {
	data, err := s.redis.Get(ctx, key.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			StateMisses.WithLabelValues(storeRedis).Inc()
			return nil, ErrStateMiss
		}
		StoreErrors.WithLabelValues(storeRedis, "load").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var state ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		StoreErrors.WithLabelValues(storeRedis, "load").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	// Redis TTL granularity can leave a just-expired value behind
	if state.IsExpired() {
		_ = s.Delete(ctx, key)
		StateMisses.WithLabelValues(storeRedis).Inc()
		return nil, ErrStateMiss
	}

	StateHits.WithLabelValues(storeRedis).Inc()
	return &state, nil
}

// Save stores the view state with a TTL based on state.Expires.
func (s *RedisStore) Save(ctx context.Context, key Key, state *ViewState) error {
	if state == nil {
		return fmt.Errorf("view state cannot be nil")
	}

	ttl := state.TTL()
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		StoreErrors.WithLabelValues(storeRedis, "save").Inc()
		return fmt.Errorf("marshal view state: %w", err)
	}

	if err := s.redis.Set(ctx, key.String(), data, ttl).Err(); err != nil {
		StoreErrors.WithLabelValues(storeRedis, "save").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes the view state for key.
func (s *RedisStore) Delete(ctx context.Context, key Key) error {
	if err := s.redis.Del(ctx, key.String()).Err(); err != nil {
		StoreErrors.WithLabelValues(storeRedis, "delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		StoreErrors.WithLabelValues(storeRedis, "ping").Inc()
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
