package usecase

import (
	"time"

	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/services/auth"
)

// AuthUC implements the authentication flows: credential-checked OTP
// login and OTP-gated password reset.
type AuthUC struct {
	userRepo auth.UserRepo
	registry auth.OTPRegistry
	mailer   auth.Mailer
	authGW   auth.AuthGW
	cfg      *models.Config
	clock    func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	registry auth.OTPRegistry,
	mailer auth.Mailer,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		registry: registry,
		mailer:   mailer,
		authGW:   authGW,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// WithClock overrides the usecase clock, for tests
func (u *AuthUC) WithClock(clock func() time.Time) *AuthUC {
	u.clock = clock
	return u
}

func (u *AuthUC) resendCooldown() time.Duration {
	if u.cfg.OTP.ResendCooldown > 0 {
		return u.cfg.OTP.ResendCooldown
	}
	return 60 * time.Second
}

func (u *AuthUC) bcryptCost() int {
	if u.cfg.OTP.BcryptCost > 0 {
		return u.cfg.OTP.BcryptCost
	}
	return 10
}
