package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jcvalencia/schedula/internal/pkg/constants"
	"github.com/jcvalencia/schedula/internal/pkg/database"
	"github.com/jcvalencia/schedula/internal/pkg/models"
)

// RedisStore keeps pending OTP records in Redis with a native TTL, for
// deployments running more than one instance. Redis expires records
// itself so no sweep is needed.
type RedisStore struct {
	redisClient *database.RedisClient
}

// NewRedisStore creates a Redis-backed OTP store
func NewRedisStore(redisClient *database.RedisClient) *RedisStore {
	return &RedisStore{redisClient: redisClient}
}

// Put stores a record under the email key with the record's remaining TTL
func (s *RedisStore) Put(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("OTP is already expired")
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, otp.Email)
	if err := s.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	return nil
}

// Get returns the pending record, or nil when none exists
func (s *RedisStore) Get(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, email)

	data, err := s.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var record models.OTP
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &record, nil
}

// MarkVerified flips the verified flag, preserving the remaining TTL
func (s *RedisStore) MarkVerified(ctx context.Context, email string) error {
	record, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	record.Verified = true
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, email)
	if err := s.redisClient.GetClient().Set(ctx, key, data, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	return nil
}

// Delete removes the pending record for the email
func (s *RedisStore) Delete(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, email)
	if err := s.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
