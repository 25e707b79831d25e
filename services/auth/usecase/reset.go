package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcvalencia/schedula/internal/pkg/logger"
	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/internal/utils"
	"github.com/jcvalencia/schedula/services/auth"
)

// RequestPasswordReset emails a reset-purpose code to an existing account
func (u *AuthUC) RequestPasswordReset(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.checkCooldown(ctx, user.Email); err != nil {
		return err
	}

	if err := u.issueOTP(ctx, user.Email, models.OTPPurposeReset); err != nil {
		return err
	}

	logger.Info("Password reset OTP issued",
		logger.String("email", utils.MaskEmail(user.Email)))

	return nil
}

// ResetPassword changes the password once the pending code matches, has
// not expired, and was verified through a prior VerifyOTP call. The
// record is deleted after a successful reset so the code is single-use.
func (u *AuthUC) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = utils.NormalizeEmail(email)

	record, err := u.registry.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load OTP: %w", err)
	}
	if record == nil {
		return auth.ErrOTPNotFound
	}
	if record.Expired(u.clock()) {
		if err := u.registry.Delete(ctx, email); err != nil {
			return fmt.Errorf("failed to delete expired OTP: %w", err)
		}
		return auth.ErrOTPExpired
	}
	if record.Code != code {
		return auth.ErrOTPMismatch
	}
	if !record.Verified {
		return auth.ErrOTPNotVerified
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.bcryptCost())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.userRepo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}

	if err := u.registry.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to delete used OTP: %w", err)
	}

	if u.authGW != nil {
		event := &models.AuthEvent{
			Email: email,
			Event: "password_changed",
			At:    u.clock(),
		}
		if err := u.authGW.PublishPasswordChangedEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish password changed event",
				logger.Err(err),
				logger.String("email", utils.MaskEmail(email)))
		}
	}

	logger.Info("Password reset completed",
		logger.String("email", utils.MaskEmail(email)))

	return nil
}
