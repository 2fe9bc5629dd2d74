package models

import (
	"encoding/json"
	"time"
)

// Role classifies an authenticated actor
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSubAdmin   Role = "sub-admin"
	RoleSuperAdmin Role = "super-admin"
)

// ActorClass declares which credential path a login attempt targets.
// The gateway selects the authority endpoint by the caller's declared
// class, never by response content.
type ActorClass string

const (
	ActorCustomer ActorClass = "customer"
	ActorAdmin    ActorClass = "admin"
)

// Identity is the normalized authenticated identity. Email is always
// lower-cased and trimmed before comparison, storage or transmission.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"`
}

// Session wraps an Identity plus the raw authority payload it was built
// from. Exactly one session may be active at a time; it is created on
// first successful authentication, destroyed on logout and rehydrated
// from the store on process start.
type Session struct {
	Identity  Identity        `json:"identity"`
	Raw       json.RawMessage `json:"raw,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuthEventType identifies orchestrator state transitions emitted to views
type AuthEventType string

const (
	EventSessionEstablished AuthEventType = "session.established"
	EventSessionCleared     AuthEventType = "session.cleared"
)

// AuthEvent is the message the orchestrator emits instead of threading
// callbacks through every view
type AuthEvent struct {
	Type    AuthEventType `json:"type"`
	Session *Session      `json:"session,omitempty"`
}
