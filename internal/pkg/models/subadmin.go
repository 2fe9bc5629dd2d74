package models

import "time"

// AuthorizationStatus is the lifecycle of a sub-admin allow-list entry
type AuthorizationStatus string

const (
	AuthorizationPending AuthorizationStatus = "pending"
	AuthorizationActive  AuthorizationStatus = "active"
)

// AuthorizationRecord is an email pre-authorized by the super-admin to
// self-register as sub-admin. Owned and mutated only by the super-admin;
// read by the signup path to gate registration.
type AuthorizationRecord struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Status    AuthorizationStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// CreateSubAdminRequest adds an email to the allow list
type CreateSubAdminRequest struct {
	Email string `json:"email"`
}

// SubAdminSignupRequest registers a pre-authorized sub-admin with the authority
type SubAdminSignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
}

// ValidateEmailRequest asks whether an email is on the allow list.
// Trigger "edit" schedules a debounced background check; anything else
// validates immediately.
type ValidateEmailRequest struct {
	Email   string `json:"email"`
	Trigger string `json:"trigger,omitempty"`
}
