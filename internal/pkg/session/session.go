package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

// Claims carries the session user projection inside a signed token
type Claims struct {
	User *models.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// Manager creates, reads, and destroys cookie-bound sessions.
// The payload is an HS256-signed JWT carried in an HttpOnly cookie.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	issuer     string
	secure     bool
}

// NewManager creates a session manager from configuration
func NewManager(config models.SessionConfig) *Manager {
	cookieName := config.CookieName
	if cookieName == "" {
		cookieName = "schedula_session"
	}
	ttl := config.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret:     []byte(config.Secret),
		cookieName: cookieName,
		ttl:        ttl,
		issuer:     config.Issuer,
		secure:     config.Secure,
	}
}

// Session is a per-request view of the cookie-bound session.
// Mutate User then call Save; Destroy clears the cookie.
type Session struct {
	manager *Manager
	ctx     echo.Context

	User *models.SessionUser
}

// Load reads the session cookie from the request. A missing, expired, or
// tampered cookie yields a session with a nil User rather than an error.
func (m *Manager) Load(c echo.Context) *Session {
	s := &Session{manager: m, ctx: c}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return s
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return s
	}

	s.User = claims.User
	return s
}

// Save signs the session payload and writes the cookie on the response
func (s *Session) Save() error {
	if s.User == nil {
		return fmt.Errorf("cannot save session without a user")
	}

	now := time.Now()
	claims := &Claims{
		User: s.User,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.manager.issuer,
			Subject:   s.User.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.manager.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.manager.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	s.ctx.SetCookie(&http.Cookie{
		Name:     s.manager.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(s.manager.ttl),
		HttpOnly: true,
		Secure:   s.manager.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Destroy clears the session cookie. Safe to call with no active session.
func (s *Session) Destroy() {
	s.User = nil
	s.ctx.SetCookie(&http.Cookie{
		Name:     s.manager.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.manager.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
