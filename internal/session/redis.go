package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/ticket-storefront/internal/domain"
)

const (
	fieldAccessToken     = "access_token"
	fieldRememberedEmail = "remembered_email"
)

// RedisStore persists sessions in a Redis hash per session ID so they survive
// storefront restarts until they expire or are cleared on logout.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps a connected client. Sessions expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	values, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:           values[fieldAccessToken],
		RememberedEmail: values[fieldRememberedEmail],
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, sess domain.Session) error {
	key := sessionKey(sessionID)
	if err := s.client.HSet(ctx, key,
		fieldAccessToken, sess.Token,
		fieldRememberedEmail, sess.RememberedEmail,
	).Err(); err != nil {
		return err
	}
	if s.ttl > 0 {
		return s.client.Expire(ctx, key, s.ttl).Err()
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
