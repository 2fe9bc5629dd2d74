// Package usecase holds the identity orchestrator and the state
// machines it sequences: credential validation, the OTP second factor,
// the sub-admin allow list and the password reset flow.
package usecase

import (
	"encoding/json"
	"sync"

	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/services/auth"
)

// pendingChallenge is the provisional identity parked between a
// credential success and its OTP completion
type pendingChallenge struct {
	class    models.ActorClass
	identity models.Identity
	raw      json.RawMessage
	mobile   string
	userID   string
}

// AuthUC implements the auth usecase
type AuthUC struct {
	cfg         *models.Config
	gw          auth.AuthGW
	sessionRepo auth.SessionRepo

	creds     *credentialGateway
	challenge *ChallengeManager
	registry  *registry
	validator *emailValidator
	reset     *resetFlow

	mu      sync.RWMutex
	session *models.Session
	pending *pendingChallenge

	events chan models.AuthEvent
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(cfg *models.Config, gw auth.AuthGW, sessionRepo auth.SessionRepo) *AuthUC {
	reg := newRegistry(gw)
	return &AuthUC{
		cfg:         cfg,
		gw:          gw,
		sessionRepo: sessionRepo,
		creds:       newCredentialGateway(cfg, gw),
		challenge:   NewChallengeManager(cfg.OTP.CooldownSeconds),
		registry:    reg,
		validator:   newEmailValidator(reg),
		reset:       newResetFlow(cfg, gw),
		events:      make(chan models.AuthEvent, 16),
	}
}
