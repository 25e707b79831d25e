package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jcvalencia/schedula/internal/pkg/session"
	"github.com/jcvalencia/schedula/internal/utils"
)

// SessionContextKey is the echo context key holding the loaded session
const SessionContextKey = "session"

// RequireSession guards routes that need an authenticated session.
// The loaded session is stored on the context for handlers.
func RequireSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessions.Load(c)
			if s.User == nil {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			c.Set(SessionContextKey, s)
			c.Set("user_id", s.User.ID.String())

			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by RequireSession, or nil
func SessionFromContext(c echo.Context) *session.Session {
	if s, ok := c.Get(SessionContextKey).(*session.Session); ok {
		return s
	}
	return nil
}
