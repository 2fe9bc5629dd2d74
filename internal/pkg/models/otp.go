package models

import (
	"encoding/json"
	"time"
)

// ChallengeState is the OTP challenge manager's state machine position
type ChallengeState string

const (
	ChallengeIdle      ChallengeState = "idle"
	ChallengeSending   ChallengeState = "sending"
	ChallengeSent      ChallengeState = "sent"
	ChallengeVerifying ChallengeState = "verifying"
	ChallengeVerified  ChallengeState = "verified"
	ChallengeAbandoned ChallengeState = "abandoned"
)

// OTPChallenge is a snapshot of the single in-flight challenge. Target
// is the normalized email or mobile the code was issued for; challenge
// and verification must reference the identical string.
type OTPChallenge struct {
	Target            string         `json:"target"`
	State             ChallengeState `json:"state"`
	IssuedAt          time.Time      `json:"issued_at"`
	CooldownRemaining int            `json:"cooldown_remaining"`
	ResendAvailable   bool           `json:"resend_available"`
}

// OTPVerifyResult carries the fields the authority returns on a
// successful verification. Authority fields take precedence over the
// provisional identity at session-merge time.
type OTPVerifyResult struct {
	Token string          `json:"token,omitempty"`
	Email string          `json:"email,omitempty"`
	Role  string          `json:"role,omitempty"`
	Raw   json.RawMessage `json:"-"`
}

// VerifyOTPRequest is the local verify-code submission
type VerifyOTPRequest struct {
	Code string `json:"code"`
}
