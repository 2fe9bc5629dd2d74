package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// Bootstrap rehydrates the persisted session on process start. A load
// failure surfaces as no session rather than blocking startup.
func (uc *AuthUC) Bootstrap(ctx context.Context) (*models.Session, error) {
	session, err := uc.sessionRepo.Load(ctx)
	if err != nil {
		logger.Warn("Session rehydration failed, starting unauthenticated",
			logger.ErrorField(err))
		return nil, nil
	}

	uc.mu.Lock()
	uc.session = session
	uc.mu.Unlock()

	if session != nil {
		logger.Info("Session rehydrated",
			logger.String("email", session.Identity.Email),
			logger.String("role", string(session.Identity.Role)))
	}

	return session, nil
}

// CurrentSession returns a snapshot of the active session, or nil.
// Mutating the snapshot never touches the orchestrator's own copy.
func (uc *AuthUC) CurrentSession() *models.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.session == nil {
		return nil
	}
	snapshot := *uc.session
	snapshot.Raw = append(json.RawMessage(nil), uc.session.Raw...)
	return &snapshot
}

// Events exposes the orchestrator's state transition stream
func (uc *AuthUC) Events() <-chan models.AuthEvent {
	return uc.events
}

// Login validates a customer credential pair and establishes the
// session directly; customers carry no second factor on login
func (uc *AuthUC) Login(ctx context.Context, email, password string) (*models.Outcome, error) {
	outcome, err := uc.creds.Login(ctx, models.ActorCustomer, email, password)
	if err != nil {
		return nil, err
	}

	if outcome.Status == models.OutcomeAuthenticated {
		if err := uc.establishSession(ctx, outcome.Identity, outcome.Raw); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// AdminLogin validates an admin credential pair. The super-admin pair
// short-circuits to a session; any other admin parks a provisional
// identity and opens the OTP challenge.
func (uc *AuthUC) AdminLogin(ctx context.Context, email, password string) (*models.Outcome, error) {
	outcome, err := uc.creds.Login(ctx, models.ActorAdmin, email, password)
	if err != nil {
		return nil, err
	}

	switch outcome.Status {
	case models.OutcomeAuthenticated:
		if err := uc.establishSession(ctx, outcome.Identity, outcome.Raw); err != nil {
			return nil, err
		}

	case models.OutcomeNeedsSecondFactor:
		uc.mu.Lock()
		uc.pending = &pendingChallenge{
			class:    models.ActorAdmin,
			identity: *outcome.Identity,
			raw:      outcome.Raw,
		}
		uc.mu.Unlock()

		target := outcome.Identity.Email
		snapshot, _ := uc.challenge.Issue(ctx, target, func(ctx context.Context) error {
			return uc.gw.AdminSendOTP(ctx, target)
		})
		outcome.Challenge = snapshot
	}

	return outcome, nil
}

// RegisterCustomer submits a customer registration. The account is not
// a session yet: the mobile must pass the OTP challenge first.
func (uc *AuthUC) RegisterCustomer(ctx context.Context, req *models.CustomerSignupRequest) (*models.Outcome, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	if !utils.ValidEmailFormat(req.Email) {
		return nil, apperrors.Validation("Please enter a valid email address")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.Validation("Password must be at least 6 characters")
	}
	if req.Mobile == "" || !utils.IsDigits(req.Mobile) {
		return nil, apperrors.Validation("Please enter a valid mobile number")
	}

	resp, err := uc.gw.RegisterCustomer(ctx, req)
	if err != nil {
		return rejectionOrError(err)
	}

	uc.mu.Lock()
	uc.pending = &pendingChallenge{
		class: models.ActorCustomer,
		identity: models.Identity{
			Email: req.Email,
			Role:  models.RoleCustomer,
		},
		raw:    resp.Raw,
		mobile: req.Mobile,
		userID: resp.UserID,
	}
	uc.mu.Unlock()

	return &models.Outcome{
		Status:   models.OutcomeNeedsSecondFactor,
		Identity: &models.Identity{Email: req.Email, Role: models.RoleCustomer},
		Raw:      resp.Raw,
	}, nil
}

// StartCustomerChallenge issues the registration OTP to the pending
// customer's mobile
func (uc *AuthUC) StartCustomerChallenge(ctx context.Context) (*models.OTPChallenge, error) {
	uc.mu.RLock()
	pending := uc.pending
	uc.mu.RUnlock()

	if pending == nil || pending.class != models.ActorCustomer {
		return nil, apperrors.New(apperrors.KindConflict, "no registration pending verification")
	}

	snapshot, _ := uc.challenge.Issue(ctx, pending.mobile, func(ctx context.Context) error {
		return uc.gw.CustomerSendOTP(ctx, pending.mobile, pending.userID)
	})
	return snapshot, nil
}

// VerifyOTP submits the second-factor code for the pending identity.
// On success the authority's verification payload wins over the
// provisional identity and the session is established.
func (uc *AuthUC) VerifyOTP(ctx context.Context, code string) (*models.Session, error) {
	uc.mu.RLock()
	pending := uc.pending
	uc.mu.RUnlock()

	if pending == nil {
		return nil, apperrors.New(apperrors.KindConflict, "no login pending verification")
	}

	var result *models.OTPVerifyResult
	err := uc.challenge.Verify(ctx, code, func(ctx context.Context) error {
		var verifyErr error
		if pending.class == models.ActorAdmin {
			result, verifyErr = uc.gw.AdminVerifyOTP(ctx, pending.identity.Email, uc.cfg.OTP.AdminMobile, code)
		} else {
			result, verifyErr = uc.gw.CustomerVerifyOTP(ctx, pending.mobile, code, pending.userID)
		}
		return verifyErr
	})
	if err != nil {
		return nil, err
	}

	identity := mergeIdentity(pending.identity, result)
	raw := pending.raw
	if result != nil && len(result.Raw) > 0 {
		raw = result.Raw
	}

	if err := uc.establishSession(ctx, &identity, raw); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.pending = nil
	uc.mu.Unlock()

	return uc.CurrentSession(), nil
}

// ResendOTP re-issues the code for the pending identity once the
// cooldown has elapsed
func (uc *AuthUC) ResendOTP(ctx context.Context) (*models.OTPChallenge, error) {
	uc.mu.RLock()
	pending := uc.pending
	uc.mu.RUnlock()

	if pending == nil {
		return nil, apperrors.New(apperrors.KindConflict, "no login pending verification")
	}

	snapshot := uc.challenge.Snapshot()
	if !snapshot.ResendAvailable {
		return snapshot, apperrors.Validation("Please wait before requesting a new OTP")
	}

	if pending.class == models.ActorAdmin {
		snapshot, _ = uc.challenge.Issue(ctx, pending.identity.Email, func(ctx context.Context) error {
			return uc.gw.AdminSendOTP(ctx, pending.identity.Email)
		})
	} else {
		snapshot, _ = uc.challenge.Issue(ctx, pending.mobile, func(ctx context.Context) error {
			return uc.gw.CustomerSendOTP(ctx, pending.mobile, pending.userID)
		})
	}
	return snapshot, nil
}

// CancelOTP abandons the pending challenge and drops the provisional
// identity; no partial state survives
func (uc *AuthUC) CancelOTP() {
	uc.challenge.Cancel()

	uc.mu.Lock()
	uc.pending = nil
	uc.mu.Unlock()
}

// ChallengeSnapshot returns the current OTP challenge state
func (uc *AuthUC) ChallengeSnapshot() *models.OTPChallenge {
	return uc.challenge.Snapshot()
}

// Logout destroys the session everywhere: store, memory and listeners
func (uc *AuthUC) Logout(ctx context.Context) error {
	uc.mu.Lock()
	session := uc.session
	uc.session = nil
	uc.pending = nil
	uc.mu.Unlock()

	uc.challenge.Cancel()

	if err := uc.sessionRepo.Clear(ctx); err != nil {
		return err
	}

	email := ""
	if session != nil {
		email = session.Identity.Email
	}
	if err := uc.gw.PublishSessionCleared(ctx, email); err != nil {
		logger.Warn("Failed to publish session cleared event",
			logger.ErrorField(err))
	}

	uc.emit(models.AuthEvent{Type: models.EventSessionCleared})

	logger.Info("Session cleared",
		logger.String("email", email))

	return nil
}

// establishSession persists and announces a new session, replacing any
// previous one
func (uc *AuthUC) establishSession(ctx context.Context, identity *models.Identity, raw []byte) error {
	session := &models.Session{
		Identity:  *identity,
		Raw:       raw,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.session = session
	uc.mu.Unlock()

	if err := uc.gw.PublishSessionEstablished(ctx, session); err != nil {
		logger.Warn("Failed to publish session established event",
			logger.ErrorField(err))
	}

	uc.emit(models.AuthEvent{Type: models.EventSessionEstablished, Session: session})

	logger.Info("Session established",
		logger.String("email", session.Identity.Email),
		logger.String("role", string(session.Identity.Role)))

	return nil
}

// emit delivers an event without ever blocking the caller; a full
// buffer drops the oldest semantics in favor of progress
func (uc *AuthUC) emit(event models.AuthEvent) {
	select {
	case uc.events <- event:
	default:
	}
}

// mergeIdentity overlays the authority's verification payload on the
// provisional identity; authority fields win where present
func mergeIdentity(provisional models.Identity, result *models.OTPVerifyResult) models.Identity {
	identity := provisional
	if result == nil {
		return identity
	}
	if result.Email != "" {
		identity.Email = utils.NormalizeEmail(result.Email)
	}
	if result.Role != "" {
		identity.Role = roleFromString(result.Role)
	}
	if result.Token != "" {
		identity.Token = result.Token
	}
	return identity
}

func roleFromString(role string) models.Role {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "super-admin", "superadmin":
		return models.RoleSuperAdmin
	case "customer", "user":
		return models.RoleCustomer
	default:
		return models.RoleSubAdmin
	}
}
