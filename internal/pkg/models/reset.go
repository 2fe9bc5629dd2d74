package models

// ResetStage is the password-reset flow position. Forward-only with
// single-step back-navigation, no skipping stages.
type ResetStage string

const (
	ResetStageEmail    ResetStage = "email"
	ResetStageOTP      ResetStage = "otp"
	ResetStagePassword ResetStage = "password"
	ResetStageDone     ResetStage = "done"
)

// PasswordResetState is the ephemeral flow snapshot; it is never persisted
type PasswordResetState struct {
	Stage             ResetStage `json:"stage"`
	Email             string     `json:"email,omitempty"`
	CooldownRemaining int        `json:"cooldown_remaining"`
	ResendAvailable   bool       `json:"resend_available"`
}

// ResetEmailRequest starts the flow
type ResetEmailRequest struct {
	Email string `json:"email"`
}

// ResetOTPRequest submits the reset code
type ResetOTPRequest struct {
	Code string `json:"code"`
}

// ResetPasswordRequest finishes the flow
type ResetPasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
