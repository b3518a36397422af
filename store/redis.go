package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenPrefix = "helix:token:"

// RedisStore implements TokenStore on Redis, for sharing app tokens across
// processes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (*Token, error) {
	raw, err := s.client.Get(ctx, tokenPrefix+clientID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}

	var tok Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("decoding cached token: %w", err)
	}
	if !tok.Expiry.IsZero() && !time.Now().Before(tok.Expiry) {
		return nil, nil
	}
	return &tok, nil
}

func (s *RedisStore) Put(ctx context.Context, clientID string, tok *Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	var ttl time.Duration
	if !tok.Expiry.IsZero() {
		ttl = time.Until(tok.Expiry)
		if ttl <= 0 {
			return nil
		}
	}
	if err := s.client.Set(ctx, tokenPrefix+clientID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// CheckHealth verifies Redis connectivity.
func (s *RedisStore) CheckHealth(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
