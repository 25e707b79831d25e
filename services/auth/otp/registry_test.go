package otp

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/services/auth"
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// fakeClock is a controllable clock for deterministic expiry tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupRegistry(t *testing.T) (*Registry, *MemoryStore, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	store := NewMemoryStore(time.Minute).WithClock(clock.Now)
	t.Cleanup(store.Stop)

	registry := NewRegistry(store, models.OTPConfig{
		LoginTTL: 5 * time.Minute,
		ResetTTL: 10 * time.Minute,
	}).WithClock(clock.Now)

	return registry, store, clock
}

func TestGenerate_CodeFormat(t *testing.T) {
	registry, _, _ := setupRegistry(t)

	record, err := registry.Generate(context.Background(), "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	assert.Regexp(t, codePattern, record.Code)
	assert.Equal(t, "a@b.com", record.Email)
	assert.Equal(t, models.OTPPurposeLogin, record.Purpose)
	assert.False(t, record.Verified)
	assert.Equal(t, 5*time.Minute, record.ExpiresAt.Sub(record.CreatedAt))
}

func TestGenerate_ResetPurposeTTL(t *testing.T) {
	registry, _, _ := setupRegistry(t)

	record, err := registry.Generate(context.Background(), "a@b.com", models.OTPPurposeReset)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, record.ExpiresAt.Sub(record.CreatedAt))
	assert.False(t, record.Verified)
}

func TestVerify_SuccessIsRepeatableWithinTTL(t *testing.T) {
	registry, _, _ := setupRegistry(t)
	ctx := context.Background()

	record, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	// verify succeeds and marks the record verified without deleting it
	require.NoError(t, registry.Verify(ctx, "a@b.com", record.Code))

	stored, err := registry.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Verified)

	// the same code remains verifiable until expiry or overwrite
	assert.NoError(t, registry.Verify(ctx, "a@b.com", record.Code))
}

func TestVerify_NoRecord(t *testing.T) {
	registry, _, _ := setupRegistry(t)

	err := registry.Verify(context.Background(), "nobody@b.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestVerify_ExpiredDeletesRecord(t *testing.T) {
	registry, _, clock := setupRegistry(t)
	ctx := context.Background()

	record, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	clock.Advance(5*time.Minute + time.Second)

	err = registry.Verify(ctx, "a@b.com", record.Code)
	assert.ErrorIs(t, err, auth.ErrOTPExpired)

	// the stale record was removed, so a retry sees no record at all
	err = registry.Verify(ctx, "a@b.com", record.Code)
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestVerify_MismatchDoesNotMutate(t *testing.T) {
	registry, _, _ := setupRegistry(t)
	ctx := context.Background()

	record, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	wrong := "000000"
	if record.Code == wrong {
		wrong = "000001"
	}

	err = registry.Verify(ctx, "a@b.com", wrong)
	assert.ErrorIs(t, err, auth.ErrOTPMismatch)

	stored, err := registry.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Verified)
	assert.Equal(t, record.Code, stored.Code)

	// the correct code still verifies
	assert.NoError(t, registry.Verify(ctx, "a@b.com", record.Code))
}

func TestGenerate_OverwritesPreviousCode(t *testing.T) {
	registry, _, _ := setupRegistry(t)
	ctx := context.Background()

	first, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	second, err := registry.Generate(ctx, "a@b.com", models.OTPPurposeLogin)
	require.NoError(t, err)

	if first.Code != second.Code {
		err = registry.Verify(ctx, "a@b.com", first.Code)
		assert.ErrorIs(t, err, auth.ErrOTPMismatch)
	}
	assert.NoError(t, registry.Verify(ctx, "a@b.com", second.Code))
}

func TestMemoryStore_SweepDeletesExpired(t *testing.T) {
	clock := newFakeClock()
	store := NewMemoryStore(time.Minute).WithClock(clock.Now)
	defer store.Stop()

	ctx := context.Background()
	now := clock.Now()

	require.NoError(t, store.Put(ctx, &models.OTP{
		Email:     "stale@b.com",
		Code:      "111111",
		CreatedAt: now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	}))
	require.NoError(t, store.Put(ctx, &models.OTP{
		Email:     "fresh@b.com",
		Code:      "222222",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}))

	store.sweepExpired()

	stale, err := store.Get(ctx, "stale@b.com")
	require.NoError(t, err)
	assert.Nil(t, stale)

	fresh, err := store.Get(ctx, "fresh@b.com")
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(ctx, &models.OTP{
				Email:     "race@b.com",
				Code:      "123456",
				CreatedAt: time.Now(),
				ExpiresAt: time.Now().Add(5 * time.Minute),
			})
			_, _ = store.Get(ctx, "race@b.com")
			_ = store.MarkVerified(ctx, "race@b.com")
		}()
	}
	wg.Wait()

	record, err := store.Get(ctx, "race@b.com")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "123456", record.Code)
}
