// Package gateway_nats publishes session lifecycle events so other
// services can react to login and logout without polling the store.
package gateway_nats

import (
	"context"
	"encoding/json"

	"github.com/kiranakart/auth-service/internal/pkg/constants"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	natspkg "github.com/kiranakart/auth-service/internal/pkg/nats"
)

// SessionEventGateway publishes auth events to NATS
type SessionEventGateway struct {
	client *natspkg.Client
}

// NewSessionEventGateway creates a new NATS session event gateway
func NewSessionEventGateway(client *natspkg.Client) *SessionEventGateway {
	return &SessionEventGateway{client: client}
}

// PublishSessionEstablished announces a newly established session
func (g *SessionEventGateway) PublishSessionEstablished(ctx context.Context, session *models.Session) error {
	event := models.AuthEvent{
		Type:    models.EventSessionEstablished,
		Session: session,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	logger.Info("Publishing session established event",
		logger.String("email", session.Identity.Email),
		logger.String("role", string(session.Identity.Role)))

	return g.client.Publish(constants.SubjectSessionEstablished, data)
}

// PublishSessionCleared announces that the session was destroyed
func (g *SessionEventGateway) PublishSessionCleared(ctx context.Context, email string) error {
	event := models.AuthEvent{
		Type: models.EventSessionCleared,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	logger.Info("Publishing session cleared event",
		logger.String("email", email))

	return g.client.Publish(constants.SubjectSessionCleared, data)
}
