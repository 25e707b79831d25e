package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/services/auth"
	"github.com/jcvalencia/schedula/services/auth/mocks"
)

const testPassword = "correct-horse"

func testUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	assert.NoError(t, err)
	return &models.User{
		ID:        uuid.New(),
		Email:     "jdelacruz@example.edu",
		Password:  string(hash),
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Role:      "professor",
	}
}

type ucMocks struct {
	userRepo *mocks.MockUserRepo
	registry *mocks.MockOTPRegistry
	mailer   *mocks.MockMailer
	authGW   *mocks.MockAuthGW
}

func setupUC(t *testing.T) (*AuthUC, *ucMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &ucMocks{
		userRepo: mocks.NewMockUserRepo(ctrl),
		registry: mocks.NewMockOTPRegistry(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
		authGW:   mocks.NewMockAuthGW(ctrl),
	}
	cfg := &models.Config{
		OTP: models.OTPConfig{
			ResendCooldown: 60 * time.Second,
			BcryptCost:     bcrypt.MinCost,
		},
	}
	uc := NewAuthUC(m.userRepo, m.registry, m.mailer, m.authGW, cfg)
	return uc, m
}

func TestRequestOTP_Success(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	now := time.Now()
	record := &models.OTP{
		Email:     user.Email,
		Code:      "123456",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Generate(ctx, user.Email, models.OTPPurposeLogin).Return(record, nil)
	m.mailer.EXPECT().Send(ctx, user.Email, gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RequestOTP(ctx, "JDelaCruz@Example.edu ", testPassword)
	assert.NoError(t, err)
}

func TestRequestOTP_WrongPassword(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)

	err := uc.RequestOTP(ctx, user.Email, "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRequestOTP_UnknownUser(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()

	m.userRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.edu").
		Return(nil, auth.ErrUserNotFound)

	err := uc.RequestOTP(ctx, "nobody@example.edu", testPassword)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestRequestOTP_DeliveryFailure(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	now := time.Now()
	record := &models.OTP{
		Email:     user.Email,
		Code:      "123456",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Generate(ctx, user.Email, models.OTPPurposeLogin).Return(record, nil)
	m.mailer.EXPECT().Send(ctx, user.Email, gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused"))

	err := uc.RequestOTP(ctx, user.Email, testPassword)
	assert.ErrorIs(t, err, auth.ErrDeliveryFailed)
}

func TestResendOTP_CooldownActive(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	now := time.Now()
	uc.WithClock(func() time.Time { return now })

	pending := &models.OTP{
		Email:     user.Email,
		Code:      "123456",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now.Add(-10 * time.Second),
		ExpiresAt: now.Add(5 * time.Minute),
	}

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Get(ctx, user.Email).Return(pending, nil)

	err := uc.ResendOTP(ctx, user.Email)
	assert.ErrorIs(t, err, auth.ErrResendCooldown)
}

func TestResendOTP_AfterCooldown(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	now := time.Now()
	uc.WithClock(func() time.Time { return now })

	pending := &models.OTP{
		Email:     user.Email,
		Code:      "123456",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now.Add(-90 * time.Second),
		ExpiresAt: now.Add(2 * time.Minute),
	}
	fresh := &models.OTP{
		Email:     user.Email,
		Code:      "654321",
		Purpose:   models.OTPPurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Get(ctx, user.Email).Return(pending, nil)
	m.registry.EXPECT().Generate(ctx, user.Email, models.OTPPurposeLogin).Return(fresh, nil)
	m.mailer.EXPECT().Send(ctx, user.Email, gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ResendOTP(ctx, user.Email)
	assert.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Verify(ctx, user.Email, "123456").Return(nil)
	m.authGW.EXPECT().PublishLoginEvent(ctx, gomock.Any()).Return(nil)

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "123456")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, sessionUser.ID)
	assert.Equal(t, user.Email, sessionUser.Email)
	assert.Equal(t, user.Role, sessionUser.Role)
}

func TestLogin_MissingCodeWithPendingOTP(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	pending := &models.OTP{
		Email:   user.Email,
		Code:    "123456",
		Purpose: models.OTPPurposeLogin,
	}

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Get(ctx, user.Email).Return(pending, nil)

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "")
	assert.ErrorIs(t, err, auth.ErrOTPRequired)
	assert.Nil(t, sessionUser)
}

func TestLogin_MissingCodeWithoutPendingOTP(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Get(ctx, user.Email).Return(nil, nil)

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
	assert.Nil(t, sessionUser)
}

func TestLogin_WrongCode(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Verify(ctx, user.Email, "000000").Return(auth.ErrOTPMismatch)

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "000000")
	assert.ErrorIs(t, err, auth.ErrOTPMismatch)
	assert.Nil(t, sessionUser)
}

func TestLogin_ExpiredCode(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Verify(ctx, user.Email, "123456").Return(auth.ErrOTPExpired)

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "123456")
	assert.ErrorIs(t, err, auth.ErrOTPExpired)
	assert.Nil(t, sessionUser)
}

func TestLogin_EventPublishFailureDoesNotFailLogin(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()
	user := testUser(t)

	m.userRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	m.registry.EXPECT().Verify(ctx, user.Email, "123456").Return(nil)
	m.authGW.EXPECT().PublishLoginEvent(ctx, gomock.Any()).
		Return(errors.New("nats: connection closed"))

	sessionUser, err := uc.Login(ctx, user.Email, testPassword, "123456")
	assert.NoError(t, err)
	assert.NotNil(t, sessionUser)
}

func TestVerifyOTP_Delegates(t *testing.T) {
	uc, m := setupUC(t)
	ctx := context.Background()

	m.registry.EXPECT().Verify(ctx, "jdelacruz@example.edu", "123456").Return(nil)

	err := uc.VerifyOTP(ctx, " JDelaCruz@Example.edu", "123456")
	assert.NoError(t, err)
}
