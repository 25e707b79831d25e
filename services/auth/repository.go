package auth

import (
	"context"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jcvalencia/schedula/services/auth UserRepo

// UserRepo is the credential store: user lookup by email and the single
// write the auth core performs (the password hash during reset).
type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
