package constants

// NATS subjects
const (
	SubjectSessionEstablished = "auth.session.established"
	SubjectSessionCleared     = "auth.session.cleared"
)
