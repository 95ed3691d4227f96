package service

import (
	"context"
	"fmt"
	"time"

	"prenatal-care-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"

	scanBatchSize = 100
)

// TokenStore whitelists issued token ids. A token whose id is not stored has been
// revoked, even if its signature and expiry are still valid.
type TokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		client: client,
		log:    log,
	}
}

func tokenKey(userID uuid.UUID, tokenType jwt.TokenType, tokenID string) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s:%s:%s", prefix, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(userID, tokenType, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenType, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check %s token in Redis: %+v", tokenType, err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) error {
	if err := s.client.Del(ctx, tokenKey(userID, tokenType, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete %s token from Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

// RevokeAll removes every access and refresh token of the user. SCAN keeps Redis
// responsive where KEYS would block on large keyspaces.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%s:*", prefix, userID.String())
		iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan %s keys: %+v", prefix, err)
			return err
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s keys: %+v", prefix, err)
				return err
			}
		}
	}
	return nil
}
