package models

import "encoding/json"

// OutcomeStatus is the result class of a credential submission
type OutcomeStatus string

const (
	OutcomeAuthenticated     OutcomeStatus = "authenticated"
	OutcomeNeedsSecondFactor OutcomeStatus = "needs_second_factor"
	OutcomeRejected          OutcomeStatus = "rejected"
)

// Outcome is the credential gateway's answer to a login attempt. For
// NeedsSecondFactor the identity is provisional: it becomes a session
// only after the OTP challenge completes.
type Outcome struct {
	Status    OutcomeStatus   `json:"status"`
	Identity  *Identity       `json:"identity,omitempty"`
	Raw       json.RawMessage `json:"-"`
	Reason    string          `json:"reason,omitempty"`
	Challenge *OTPChallenge   `json:"challenge,omitempty"`
}

// LoginRequest represents a credential submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the authority's customer-login payload. Extra fields
// stay in Raw so the session keeps the full server response.
type LoginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token,omitempty"`
	Error   string          `json:"error,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// AdminLoginResponse is the authority's admin-login payload. Email and
// Role are advisory here; the verified values arrive with the OTP
// verification result.
type AdminLoginResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Email   string          `json:"email,omitempty"`
	Role    string          `json:"role,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// CustomerSignupRequest registers a new customer with the authority
type CustomerSignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
}

// SignupResponse is the authority's customer-registration payload
type SignupResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	UserID  string          `json:"userId,omitempty"`
	Raw     json.RawMessage `json:"-"`
}
