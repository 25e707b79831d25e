package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcvalencia/schedula/internal/pkg/logger"
	"github.com/jcvalencia/schedula/internal/pkg/models"
	"github.com/jcvalencia/schedula/internal/pkg/session"
	"github.com/jcvalencia/schedula/internal/utils"
	"github.com/jcvalencia/schedula/services/auth"
)

// AuthHandler handles HTTP requests for the authentication flows
type AuthHandler struct {
	authUC   auth.AuthUC
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authUC auth.AuthUC,
	sessions *session.Manager,
) *AuthHandler {
	return &AuthHandler{
		authUC:   authUC,
		sessions: sessions,
	}
}

// RequestOTP validates credentials and emails a login code
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), req.Email, req.Password); err != nil {
		return h.authErrorResponse(c, err, "RequestOTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "A verification code has been sent to your email", nil)
}

// ResendOTP regenerates the login code, subject to the resend cooldown
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	if err := h.authUC.ResendOTP(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "No account found with this email address")
		}
		return h.authErrorResponse(c, err, "ResendOTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "A new verification code has been sent to your email", nil)
}

// VerifyOTP checks the submitted code against the pending record
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	if err := h.authUC.VerifyOTP(c.Request().Context(), req.Email, req.Code); err != nil {
		return h.authErrorResponse(c, err, "VerifyOTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code verified successfully", nil)
}

// Login finalizes the two-step login and establishes the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	sessionUser, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password, req.Code)
	if err != nil {
		return h.authErrorResponse(c, err, "Login")
	}

	s := h.sessions.Load(c)
	s.User = sessionUser
	if err := s.Save(); err != nil {
		logger.Error("Failed to save session",
			logger.Err(err),
			logger.String("user_id", sessionUser.ID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to establish session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", sessionUser)
}

// Logout clears the session cookie. Idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Load(c).Destroy()
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user carried by the session cookie
func (h *AuthHandler) Me(c echo.Context) error {
	s := h.sessions.Load(c)
	if s.User == nil {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", s.User)
}

// ForgotPassword emails a password-reset code to an existing account
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "No account found with this email address")
		}
		return h.authErrorResponse(c, err, "ForgotPassword")
	}

	return utils.SuccessResponse(c, http.StatusOK, "A password reset code has been sent to your email", nil)
}

// ResetPassword changes the password once the reset code has been verified
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) || req.Code == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Email, code, and new password are required")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return h.authErrorResponse(c, err, "ResetPassword")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password has been reset successfully", nil)
}

// authErrorResponse maps usecase errors onto the response envelope.
// Credential failures share one message so the response does not reveal
// whether the account exists.
func (h *AuthHandler) authErrorResponse(c echo.Context, err error, endpoint string) error {
	switch {
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, auth.ErrOTPRequired):
		return utils.UnauthorizedResponse(c, "Verification code is required")
	case errors.Is(err, auth.ErrOTPNotFound):
		return utils.UnauthorizedResponse(c, "No verification code found. Please request a new one.")
	case errors.Is(err, auth.ErrOTPExpired):
		return utils.UnauthorizedResponse(c, "Verification code has expired. Please request a new one.")
	case errors.Is(err, auth.ErrOTPMismatch):
		return utils.UnauthorizedResponse(c, "Invalid verification code")
	case errors.Is(err, auth.ErrOTPNotVerified):
		return utils.UnauthorizedResponse(c, "Verification code has not been verified")
	case errors.Is(err, auth.ErrResendCooldown):
		return utils.TooManyRequestsResponse(c, "Please wait before requesting another code")
	case errors.Is(err, auth.ErrDeliveryFailed):
		logger.Error("OTP email delivery failed",
			logger.Err(err),
			logger.String("endpoint", endpoint))
		return utils.InternalServerErrorResponse(c, "Failed to send the verification email. Please try again.")
	default:
		logger.Error("Auth request failed",
			logger.Err(err),
			logger.String("endpoint", endpoint))
		return utils.InternalServerErrorResponse(c, "An error occurred. Please try again.")
	}
}
