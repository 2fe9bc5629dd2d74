package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
)

// ChallengeManager owns the single in-flight OTP challenge. All state
// lives behind one mutex; every issue bumps a generation counter so a
// slow network reply or a leftover cooldown ticker from a cancelled
// challenge can never touch the state of a newer one.
type ChallengeManager struct {
	mu sync.Mutex

	state      models.ChallengeState
	target     string
	generation uint64
	issuedOnce bool
	verifying  bool

	issuedAt          time.Time
	cooldownRemaining int
	cooldownSeconds   int

	// tickInterval is one second in production; tests shrink it
	tickInterval time.Duration
}

// NewChallengeManager creates a challenge manager with the configured
// resend cooldown
func NewChallengeManager(cooldownSeconds int) *ChallengeManager {
	if cooldownSeconds <= 0 {
		cooldownSeconds = 60
	}
	return &ChallengeManager{
		state:           models.ChallengeIdle,
		cooldownSeconds: cooldownSeconds,
		tickInterval:    time.Second,
	}
}

// Issue requests a code for target via send. The challenge advances to
// Sent and the resend cooldown restarts even when send fails: the
// authority may have dispatched the code before the reply was lost, so
// the actor is allowed to proceed to code entry and retry from there.
// The send error is returned for logging alongside the new snapshot.
func (c *ChallengeManager) Issue(ctx context.Context, target string, send func(context.Context) error) (*models.OTPChallenge, error) {
	c.mu.Lock()
	if c.verifying {
		c.mu.Unlock()
		return c.Snapshot(), apperrors.New(apperrors.KindConflict, "verification in progress")
	}
	c.generation++
	gen := c.generation
	c.state = models.ChallengeSending
	c.target = target
	c.mu.Unlock()

	sendErr := send(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	// a cancel or a newer issue won while we were on the wire
	if c.generation != gen {
		return c.snapshotLocked(), nil
	}

	c.state = models.ChallengeSent
	c.issuedOnce = true
	c.issuedAt = time.Now()
	c.cooldownRemaining = c.cooldownSeconds
	go c.runCooldown(gen)

	if sendErr != nil {
		logger.Warn("OTP send failed, challenge kept open for retry",
			logger.String("target", target),
			logger.ErrorField(sendErr))
	}

	return c.snapshotLocked(), sendErr
}

// Verify submits code through verify. A code is never submitted before
// an issue has completed, codes shorter than four digits are rejected
// without a network call, and a second submission while one is pending
// is refused rather than queued.
func (c *ChallengeManager) Verify(ctx context.Context, code string, verify func(context.Context) error) error {
	c.mu.Lock()
	if !c.issuedOnce || c.state == models.ChallengeAbandoned {
		c.mu.Unlock()
		return apperrors.New(apperrors.KindConflict, "no code has been issued")
	}
	if c.verifying {
		c.mu.Unlock()
		return apperrors.New(apperrors.KindConflict, "verification already in progress")
	}
	if !utils.ValidOTPFormat(code) {
		c.mu.Unlock()
		return apperrors.Validation("Please enter the complete OTP")
	}
	c.verifying = true
	c.state = models.ChallengeVerifying
	gen := c.generation
	c.mu.Unlock()

	verifyErr := verify(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		// challenge was cancelled mid-flight; the result no longer matters
		return apperrors.New(apperrors.KindConflict, "challenge no longer active")
	}

	c.verifying = false
	if verifyErr != nil {
		c.state = models.ChallengeSent
		return verifyErr
	}

	c.state = models.ChallengeVerified
	return nil
}

// Cancel abandons the current challenge. The generation bump orphans
// any in-flight send or verify and its cooldown ticker.
func (c *ChallengeManager) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = models.ChallengeAbandoned
	c.verifying = false
	c.issuedOnce = false
	c.cooldownRemaining = 0
}

// Target returns the target the current challenge was issued for
func (c *ChallengeManager) Target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Snapshot returns a copy of the current challenge state
func (c *ChallengeManager) Snapshot() *models.OTPChallenge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *ChallengeManager) snapshotLocked() *models.OTPChallenge {
	return &models.OTPChallenge{
		Target:            c.target,
		State:             c.state,
		IssuedAt:          c.issuedAt,
		CooldownRemaining: c.cooldownRemaining,
		ResendAvailable:   c.state == models.ChallengeSent && c.cooldownRemaining == 0,
	}
}

// runCooldown counts the resend cooldown down once per tick. It exits
// as soon as its generation is stale.
func (c *ChallengeManager) runCooldown(gen uint64) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.generation != gen || c.cooldownRemaining <= 0 {
			c.mu.Unlock()
			return
		}
		c.cooldownRemaining--
		done := c.cooldownRemaining == 0
		c.mu.Unlock()
		if done {
			return
		}
	}
}
