package constants

// Redis keys
const (
	// KeySession is the single well-known key the active session is
	// persisted under. Absence means unauthenticated.
	KeySession = "auth:session:current"
)
