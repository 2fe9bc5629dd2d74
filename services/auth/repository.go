package auth

import (
	"context"

	"github.com/kiranakart/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kiranakart/auth-service/services/auth SessionRepo

// SessionRepo persists the single active session under one well-known
// storage key. The orchestrator is the only writer; readers receive
// value copies.
type SessionRepo interface {
	// Load returns the persisted session, or nil when none exists
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}
