// Package session keeps the server-side half of a login session: a
// blacklist of revoked tokens and the flash messages queued for the next
// page render.
package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Store interface {
	// Blacklist revokes a session token until its natural expiry.
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)

	// PushFlash queues a message shown on the next render for this token.
	PushFlash(ctx context.Context, token, message string) error
	// PopFlashes drains the queued messages.
	PopFlashes(ctx context.Context, token string) ([]string, error)
}

const flashTTL = time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, "blacklist:"+token, 1, ttl).Err()
}

func (s *RedisStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *RedisStore) PushFlash(ctx context.Context, token, message string) error {
	key := "flash:" + token
	if err := s.client.RPush(ctx, key, message).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, flashTTL).Err()
}

func (s *RedisStore) PopFlashes(ctx context.Context, token string) ([]string, error) {
	key := "flash:" + token
	messages, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return nil, err
		}
	}
	return messages, nil
}
