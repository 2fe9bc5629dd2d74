package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
	"github.com/kiranakart/auth-service/services/auth"
)

// resetFlow drives the OTP-gated password reset: email, code, new
// password, forward-only with single-step back-navigation. The code is
// always delivered to the configured mobile target, never to one the
// caller supplies. The flow is ephemeral and never persisted.
type resetFlow struct {
	cfg *models.Config
	gw  auth.AuthGW

	mu sync.Mutex

	stage models.ResetStage
	email string
	code  string

	generation        uint64
	cooldownRemaining int
	cooldownSeconds   int
	tickInterval      time.Duration
}

func newResetFlow(cfg *models.Config, gw auth.AuthGW) *resetFlow {
	cooldown := cfg.OTP.CooldownSeconds
	if cooldown <= 0 {
		cooldown = 60
	}
	return &resetFlow{
		cfg:             cfg,
		gw:              gw,
		stage:           models.ResetStageEmail,
		cooldownSeconds: cooldown,
		tickInterval:    time.Second,
	}
}

// SubmitEmail starts the flow. An explicit authority rejection keeps
// the flow at the email stage; an unreachable authority does not, since
// the code may have been dispatched before the reply was lost, so the
// actor advances to code entry and can resend from there.
func (f *resetFlow) SubmitEmail(ctx context.Context, email string) (*models.PasswordResetState, error) {
	email = utils.NormalizeEmail(email)
	if !utils.ValidEmailFormat(email) {
		return f.State(), apperrors.Validation("Please enter a valid email address")
	}

	f.mu.Lock()
	if f.stage != models.ResetStageEmail {
		f.mu.Unlock()
		return f.State(), apperrors.New(apperrors.KindConflict, "reset already in progress")
	}
	f.mu.Unlock()

	err := f.gw.ResetSendOTP(ctx, email, f.cfg.Reset.Mobile)
	if err != nil && !apperrors.IsNetwork(err) {
		return f.State(), err
	}

	f.mu.Lock()
	f.email = email
	f.stage = models.ResetStageOTP
	f.startCooldownLocked()
	f.mu.Unlock()

	if err != nil {
		logger.Warn("Reset OTP send failed, flow advanced for retry",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	return f.State(), nil
}

// SubmitOTP verifies the reset code. Codes shorter than four digits are
// rejected without a network call. An unreachable authority keeps the
// flow at the code stage unless relaxed acceptance is configured.
func (f *resetFlow) SubmitOTP(ctx context.Context, code string) (*models.PasswordResetState, error) {
	f.mu.Lock()
	if f.stage != models.ResetStageOTP {
		f.mu.Unlock()
		return f.State(), apperrors.New(apperrors.KindConflict, "no reset code pending")
	}
	email := f.email
	f.mu.Unlock()

	if !utils.ValidOTPFormat(code) {
		return f.State(), apperrors.Validation("Please enter the complete OTP")
	}

	err := f.gw.ResetVerifyOTP(ctx, email, f.cfg.Reset.Mobile, code)
	if err != nil {
		if !apperrors.IsNetwork(err) || !f.cfg.Reset.Relaxed {
			return f.State(), err
		}
		logger.Warn("Reset OTP accepted without verification, authority unreachable",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	f.mu.Lock()
	f.code = code
	f.stage = models.ResetStagePassword
	f.mu.Unlock()

	return f.State(), nil
}

// SubmitPassword finishes the flow with the verified code
func (f *resetFlow) SubmitPassword(ctx context.Context, newPassword, confirmPassword string) (*models.PasswordResetState, error) {
	f.mu.Lock()
	if f.stage != models.ResetStagePassword {
		f.mu.Unlock()
		return f.State(), apperrors.New(apperrors.KindConflict, "reset code not verified yet")
	}
	email, code := f.email, f.code
	f.mu.Unlock()

	if len(newPassword) < 6 {
		return f.State(), apperrors.Validation("Password must be at least 6 characters")
	}
	if newPassword != confirmPassword {
		return f.State(), apperrors.Validation("Passwords do not match")
	}

	if err := f.gw.ResetPassword(ctx, email, f.cfg.Reset.Mobile, code, newPassword); err != nil {
		return f.State(), err
	}

	f.mu.Lock()
	f.stage = models.ResetStageDone
	f.code = ""
	f.mu.Unlock()

	logger.Info("Password reset completed",
		logger.String("email", email))

	return f.State(), nil
}

// Resend re-requests the code. It is refused while the cooldown runs;
// like the first send, a network failure still restarts the cooldown,
// but an explicit rejection does not, so the actor may retry at once.
func (f *resetFlow) Resend(ctx context.Context) (*models.PasswordResetState, error) {
	f.mu.Lock()
	if f.stage != models.ResetStageOTP {
		f.mu.Unlock()
		return f.State(), apperrors.New(apperrors.KindConflict, "no reset code pending")
	}
	if f.cooldownRemaining > 0 {
		f.mu.Unlock()
		return f.State(), apperrors.Validation("Please wait before requesting a new OTP")
	}
	email := f.email
	f.mu.Unlock()

	err := f.gw.ResetSendOTP(ctx, email, f.cfg.Reset.Mobile)
	if err != nil && !apperrors.IsNetwork(err) {
		return f.State(), err
	}

	f.mu.Lock()
	f.startCooldownLocked()
	f.mu.Unlock()

	if err != nil {
		logger.Warn("Reset OTP resend failed, cooldown restarted",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	return f.State(), nil
}

// Back steps the flow one stage toward the start. A finished flow
// restarts from the email stage.
func (f *resetFlow) Back() (*models.PasswordResetState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.stage {
	case models.ResetStageOTP:
		f.stage = models.ResetStageEmail
		f.generation++
		f.cooldownRemaining = 0
	case models.ResetStagePassword:
		f.stage = models.ResetStageOTP
		f.code = ""
	case models.ResetStageDone:
		f.stage = models.ResetStageEmail
		f.email = ""
		f.code = ""
	default:
		return f.stateLocked(), apperrors.New(apperrors.KindConflict, "already at the first stage")
	}

	return f.stateLocked(), nil
}

// State returns a copy of the flow snapshot
func (f *resetFlow) State() *models.PasswordResetState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

func (f *resetFlow) stateLocked() *models.PasswordResetState {
	return &models.PasswordResetState{
		Stage:             f.stage,
		Email:             f.email,
		CooldownRemaining: f.cooldownRemaining,
		ResendAvailable:   f.stage == models.ResetStageOTP && f.cooldownRemaining == 0,
	}
}

func (f *resetFlow) startCooldownLocked() {
	f.generation++
	gen := f.generation
	f.cooldownRemaining = f.cooldownSeconds
	go f.runCooldown(gen)
}

func (f *resetFlow) runCooldown(gen uint64) {
	ticker := time.NewTicker(f.tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		f.mu.Lock()
		if f.generation != gen || f.cooldownRemaining <= 0 {
			f.mu.Unlock()
			return
		}
		f.cooldownRemaining--
		done := f.cooldownRemaining == 0
		f.mu.Unlock()
		if done {
			return
		}
	}
}
