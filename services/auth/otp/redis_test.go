package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcvalencia/schedula/internal/pkg/constants"
	"github.com/jcvalencia/schedula/internal/pkg/database"
	"github.com/jcvalencia/schedula/internal/pkg/models"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewRedisStore(&database.RedisClient{Client: client}), mr
}

func freshOTP(email string) *models.OTP {
	now := time.Now()
	return &models.OTP{
		Email:     email,
		Code:      "123456",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
}

func TestRedisStore_PutAndGet(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	otp := freshOTP("a@b.com")
	require.NoError(t, store.Put(ctx, otp))

	// stored as JSON under the auth OTP key with a TTL
	key := fmt.Sprintf(constants.KeyAuthOTP, "a@b.com")
	val, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.OTP
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, "123456", stored.Code)
	assert.True(t, mr.TTL(key) > 0)

	record, err := store.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "123456", record.Code)
	assert.False(t, record.Verified)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := setupRedisStore(t)

	record, err := store.Get(context.Background(), "nobody@b.com")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRedisStore_PutRejectsExpired(t *testing.T) {
	store, _ := setupRedisStore(t)

	otp := freshOTP("a@b.com")
	otp.ExpiresAt = time.Now().Add(-time.Minute)

	err := store.Put(context.Background(), otp)
	assert.Error(t, err)
}

func TestRedisStore_MarkVerifiedKeepsTTL(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, freshOTP("a@b.com")))
	require.NoError(t, store.MarkVerified(ctx, "a@b.com"))

	record, err := store.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Verified)

	key := fmt.Sprintf(constants.KeyAuthOTP, "a@b.com")
	assert.True(t, mr.TTL(key) > 0)
}

func TestRedisStore_NativeExpiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, freshOTP("a@b.com")))

	mr.FastForward(6 * time.Minute)

	record, err := store.Get(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, freshOTP("a@b.com")))
	require.NoError(t, store.Delete(ctx, "a@b.com"))

	record, err := store.Get(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRegistryWithRedisStore(t *testing.T) {
	store, _ := setupRedisStore(t)

	registry := NewRegistry(store, models.OTPConfig{
		LoginTTL: 5 * time.Minute,
		ResetTTL: 10 * time.Minute,
	})
	ctx := context.Background()

	record, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, record.Code)

	require.NoError(t, registry.Verify(ctx, "a@b.com", record.Code))

	stored, err := registry.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Verified)
}
