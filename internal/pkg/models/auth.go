package models

import "time"

// RequestOTPRequest is the payload to start a login (credentials + OTP issuance)
type RequestOTPRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResendOTPRequest asks for a fresh login code
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyOTPRequest marks a pending code as verified
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// LoginRequest finalizes a login with credentials and the emailed code
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Code     string `json:"code"`
}

// ForgotPasswordRequest starts the password-reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest completes the password-reset flow
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// AuthEvent is published for the platform's activity log
type AuthEvent struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Event  string    `json:"event"`
	At     time.Time `json:"at"`
}
