package auth

import (
	"context"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jcvalencia/schedula/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// login flow
	RequestOTP(ctx context.Context, email, password string) error
	ResendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password, code string) (*models.SessionUser, error)

	// password reset flow
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}
