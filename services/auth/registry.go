package auth

import (
	"context"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_registry.go -package=mocks github.com/jcvalencia/schedula/services/auth OTPRegistry

// OTPRegistry owns one-time passcode generation, lookup, verification, and
// expiry. At most one pending record exists per email; generating a new
// code overwrites the previous one.
type OTPRegistry interface {
	// Generate mints a fresh 6-digit code for the email, overwriting any
	// pending record, and returns the stored record.
	Generate(ctx context.Context, email string, purpose models.OTPPurpose) (*models.OTP, error)

	// Get returns the pending record for the email, or nil when none exists.
	Get(ctx context.Context, email string) (*models.OTP, error)

	// Verify checks the supplied code: ErrOTPNotFound when no record exists,
	// ErrOTPExpired when the TTL elapsed (the record is deleted as a side
	// effect), ErrOTPMismatch when the codes differ. On success the record
	// is marked verified and retained until expiry or overwrite.
	Verify(ctx context.Context, email, code string) error

	// Delete removes the pending record for the email, if any.
	Delete(ctx context.Context, email string) error
}
