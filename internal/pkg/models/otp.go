package models

import (
	"time"
)

// OTPPurpose distinguishes login codes from password-reset codes
type OTPPurpose string

const (
	OTPPurposeLogin OTPPurpose = "login"
	OTPPurposeReset OTPPurpose = "reset"
)

// OTP represents a pending one-time passcode for an email address.
// At most one record exists per email; a new request overwrites it.
type OTP struct {
	Email     string     `json:"email"`
	Code      string     `json:"code"`
	Purpose   OTPPurpose `json:"purpose"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	Verified  bool       `json:"verified"`
}

// Expired reports whether the code's TTL has elapsed at the given time
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
