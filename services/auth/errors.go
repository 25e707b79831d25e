package auth

import "errors"

// Error taxonomy for the authentication flows. Handlers translate these
// into user-facing messages; nothing else leaks to the caller.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOTPNotFound        = errors.New("otp not found")
	ErrOTPExpired         = errors.New("otp expired")
	ErrOTPMismatch        = errors.New("otp mismatch")
	ErrOTPNotVerified     = errors.New("otp not verified")
	ErrOTPRequired        = errors.New("otp required")
	ErrDeliveryFailed     = errors.New("otp delivery failed")
	ErrResendCooldown     = errors.New("resend cooldown active")
)
