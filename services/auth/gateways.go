package auth

import (
	"context"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/jcvalencia/schedula/services/auth AuthGW,Mailer

// AuthGW publishes auth activity events for the platform's activity log
type AuthGW interface {
	PublishLoginEvent(ctx context.Context, event *models.AuthEvent) error
	PublishPasswordChangedEvent(ctx context.Context, event *models.AuthEvent) error
}

// Mailer delivers a message to an address, bounded by a timeout
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
