package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/jcvalencia/schedula/internal/pkg/middleware"
	"github.com/jcvalencia/schedula/internal/pkg/session"
	"github.com/jcvalencia/schedula/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	sessions    *session.Manager
	redisClient *redis.Client
}

// NewHandler creates and initializes the auth service handler
func NewHandler(
	authHandler *http.AuthHandler,
	sessions *session.Manager,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		sessions:    sessions,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers the auth endpoints on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")

	// Code issuance endpoints are rate limited per IP on top of the
	// per-email resend cooldown enforced by the usecase.
	var issueLimiter echo.MiddlewareFunc
	if h.redisClient != nil {
		issueLimiter = middleware.IPRateLimiter(10, time.Minute, h.redisClient)
	}

	if issueLimiter != nil {
		authGroup.POST("/otp/request", h.authHandler.RequestOTP, issueLimiter)
		authGroup.POST("/otp/resend", h.authHandler.ResendOTP, issueLimiter)
		authGroup.POST("/password/forgot", h.authHandler.ForgotPassword, issueLimiter)
	} else {
		authGroup.POST("/otp/request", h.authHandler.RequestOTP)
		authGroup.POST("/otp/resend", h.authHandler.ResendOTP)
		authGroup.POST("/password/forgot", h.authHandler.ForgotPassword)
	}

	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/logout", h.authHandler.Logout)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)

	// Session-guarded routes
	authGroup.GET("/me", h.authHandler.Me, middleware.RequireSession(h.sessions))
}
