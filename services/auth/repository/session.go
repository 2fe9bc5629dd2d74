// Package repository persists the single active session in Redis.
package repository

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/kiranakart/auth-service/internal/pkg/constants"
	"github.com/kiranakart/auth-service/internal/pkg/database"
	"github.com/kiranakart/auth-service/internal/pkg/models"
)

// SessionRepo stores the session under one well-known key. Sessions do
// not expire on their own; only logout clears the key.
type SessionRepo struct {
	client *database.RedisClient
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(client *database.RedisClient) *SessionRepo {
	return &SessionRepo{client: client}
}

// Load returns the persisted session, or nil when none exists. A
// corrupt value is treated as absent and cleared so the next save
// starts clean.
func (r *SessionRepo) Load(ctx context.Context) (*models.Session, error) {
	data, err := r.client.Get(ctx, constants.KeySession)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		_ = r.client.Delete(ctx, constants.KeySession)
		return nil, nil
	}

	return &session, nil
}

// Save persists the session, replacing any previous one
func (r *SessionRepo) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, constants.KeySession, string(data), 0)
}

// Clear removes the persisted session
func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.client.Delete(ctx, constants.KeySession)
}
