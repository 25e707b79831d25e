package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcvalencia/schedula/internal/pkg/logger"
	"github.com/jcvalencia/schedula/internal/pkg/mail"
	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/internal/utils"
	"github.com/jcvalencia/schedula/services/auth"
)

// RequestOTP validates credentials and emails a fresh login code
func (u *AuthUC) RequestOTP(ctx context.Context, email, password string) error {
	email = utils.NormalizeEmail(email)

	user, err := u.checkCredentials(ctx, email, password)
	if err != nil {
		return err
	}

	if err := u.issueOTP(ctx, user.Email, models.OTPPurposeLogin); err != nil {
		return err
	}

	logger.Info("Login OTP issued",
		logger.String("email", utils.MaskEmail(user.Email)))

	return nil
}

// ResendOTP regenerates and resends a login code, subject to a
// server-side cooldown keyed by email.
func (u *AuthUC) ResendOTP(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.checkCooldown(ctx, user.Email); err != nil {
		return err
	}

	if err := u.issueOTP(ctx, user.Email, models.OTPPurposeLogin); err != nil {
		return err
	}

	logger.Info("Login OTP resent",
		logger.String("email", utils.MaskEmail(user.Email)))

	return nil
}

// VerifyOTP checks the supplied code and marks the pending record verified
func (u *AuthUC) VerifyOTP(ctx context.Context, email, code string) error {
	return u.registry.Verify(ctx, utils.NormalizeEmail(email), code)
}

// Login re-validates credentials, verifies the emailed code, and returns
// the session projection. The credential check is repeated here even
// though RequestOTP already performed one.
func (u *AuthUC) Login(ctx context.Context, email, password, code string) (*models.SessionUser, error) {
	email = utils.NormalizeEmail(email)

	user, err := u.checkCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// The second factor is mandatory: a missing code is rejected, and with
	// no pending record at all the caller must request a code first.
	if code == "" {
		pending, err := u.registry.Get(ctx, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending OTP: %w", err)
		}
		if pending == nil {
			return nil, auth.ErrOTPNotFound
		}
		return nil, auth.ErrOTPRequired
	}

	if err := u.registry.Verify(ctx, user.Email, code); err != nil {
		return nil, err
	}

	sessionUser := models.SessionUserFromUser(user)

	if u.authGW != nil {
		event := &models.AuthEvent{
			UserID: user.ID.String(),
			Email:  user.Email,
			Event:  "login",
			At:     u.clock(),
		}
		if err := u.authGW.PublishLoginEvent(ctx, event); err != nil {
			// activity logging must not fail the login
			logger.Warn("Failed to publish login event",
				logger.Err(err),
				logger.String("email", utils.MaskEmail(user.Email)))
		}
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(user.Email)))

	return sessionUser, nil
}

// checkCredentials looks up the user and compares the password hash
func (u *AuthUC) checkCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// checkCooldown rejects a regenerate when the pending record is too fresh
func (u *AuthUC) checkCooldown(ctx context.Context, email string) error {
	pending, err := u.registry.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check pending OTP: %w", err)
	}
	if pending != nil && u.clock().Sub(pending.CreatedAt) < u.resendCooldown() {
		return auth.ErrResendCooldown
	}
	return nil
}

// issueOTP mints a code for the purpose and emails it to the address
func (u *AuthUC) issueOTP(ctx context.Context, email string, purpose models.OTPPurpose) error {
	record, err := u.registry.Generate(ctx, email, purpose)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	ttlMinutes := int(record.ExpiresAt.Sub(record.CreatedAt).Minutes())

	var subject, body string
	if purpose == models.OTPPurposeReset {
		subject, body = mail.ResetOTPMessage(record.Code, ttlMinutes)
	} else {
		subject, body = mail.LoginOTPMessage(record.Code, ttlMinutes)
	}

	if err := u.mailer.Send(ctx, email, subject, body); err != nil {
		logger.Error("Failed to send OTP email",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(email)))
		return fmt.Errorf("%w: %v", auth.ErrDeliveryFailed, err)
	}

	return nil
}
