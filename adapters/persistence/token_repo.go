package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hrahman/profilio/internal/domain/user"
)

const resetTokenKeyPrefix = "reset_token:"

// redisResetTokenStore keeps password reset tokens in Redis under a TTL.
// Redeeming a token removes it atomically, so each token is single use.
type redisResetTokenStore struct {
	rdb *redis.Client
}

func NewRedisResetTokenStore(rdb *redis.Client) user.ResetTokenStore {
	return &redisResetTokenStore{rdb: rdb}
}

func (s *redisResetTokenStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := resetTokenKeyPrefix + token
	if err := s.rdb.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("error when store reset token: %w", err)
	}
	return nil
}

func (s *redisResetTokenStore) Redeem(ctx context.Context, token string) (uuid.UUID, error) {
	key := resetTokenKeyPrefix + token
	val, err := s.rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, user.ErrResetTokenNotFound
		}
		return uuid.Nil, fmt.Errorf("error when redeem reset token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed user id in reset token: %w", err)
	}
	return userID, nil
}
