package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jcvalencia/schedula/internal/pkg/constants"
	"github.com/jcvalencia/schedula/internal/pkg/models"
	natspkg "github.com/jcvalencia/schedula/internal/pkg/nats"
)

// AuthGW publishes auth activity events over NATS so the platform's
// activity log can record sign-ins and password changes without coupling.
type AuthGW struct {
	natsClient *natspkg.Client
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(natsClient *natspkg.Client) *AuthGW {
	return &AuthGW{natsClient: natsClient}
}

// PublishLoginEvent publishes a successful-login event
func (g *AuthGW) PublishLoginEvent(_ context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectAuthLogin, event)
}

// PublishPasswordChangedEvent publishes a password-changed event
func (g *AuthGW) PublishPasswordChangedEvent(_ context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectAuthPasswordChanged, event)
}

func (g *AuthGW) publish(subject string, event *models.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal auth event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish auth event: %w", err)
	}

	return nil
}
