// Package otp implements the one-time passcode registry: code generation,
// storage with a TTL, verification, and expiry sweeping.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/services/auth"
)

// Store is the backing store for pending OTP records, keyed by email.
// Get returns nil (not an error) when no record exists.
type Store interface {
	Put(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, email string) (*models.OTP, error)
	MarkVerified(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

// Registry implements auth.OTPRegistry on top of a Store
type Registry struct {
	store    Store
	clock    func() time.Time
	loginTTL time.Duration
	resetTTL time.Duration
}

// NewRegistry creates a registry with the given store and TTLs
func NewRegistry(store Store, config models.OTPConfig) *Registry {
	loginTTL := config.LoginTTL
	if loginTTL <= 0 {
		loginTTL = 5 * time.Minute
	}
	resetTTL := config.ResetTTL
	if resetTTL <= 0 {
		resetTTL = 10 * time.Minute
	}
	return &Registry{
		store:    store,
		clock:    time.Now,
		loginTTL: loginTTL,
		resetTTL: resetTTL,
	}
}

// WithClock overrides the registry's clock, for tests
func (r *Registry) WithClock(clock func() time.Time) *Registry {
	r.clock = clock
	return r
}

// Generate mints a fresh code for the email, overwriting any pending record
func (r *Registry) Generate(ctx context.Context, email string, purpose models.OTPPurpose) (*models.OTP, error) {
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	ttl := r.loginTTL
	if purpose == models.OTPPurposeReset {
		ttl = r.resetTTL
	}

	now := r.clock()
	record := &models.OTP{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Verified:  false,
	}

	if err := r.store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	return record, nil
}

// Get returns the pending record for the email, or nil when none exists
func (r *Registry) Get(ctx context.Context, email string) (*models.OTP, error) {
	return r.store.Get(ctx, email)
}

// Verify checks the supplied code against the pending record
func (r *Registry) Verify(ctx context.Context, email, code string) error {
	record, err := r.store.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load OTP: %w", err)
	}
	if record == nil {
		return auth.ErrOTPNotFound
	}

	if record.Expired(r.clock()) {
		// delete the stale record so a fresh request can proceed cleanly
		if err := r.store.Delete(ctx, email); err != nil {
			return fmt.Errorf("failed to delete expired OTP: %w", err)
		}
		return auth.ErrOTPExpired
	}

	if record.Code != code {
		return auth.ErrOTPMismatch
	}

	if err := r.store.MarkVerified(ctx, email); err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	return nil
}

// Delete removes the pending record for the email, if any
func (r *Registry) Delete(ctx context.Context, email string) error {
	return r.store.Delete(ctx, email)
}

// generateCode draws a 6-digit code uniformly from [100000, 999999]
// using a cryptographically secure source.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
