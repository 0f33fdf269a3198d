package domain

// SessionIssuer issues a signed token for a new cart session id.
type SessionIssuer interface {
	Issue(sessionID string) (token string, err error)
}

// SessionVerifier verifies a cart session token and returns its session id.
type SessionVerifier interface {
	Verify(token string) (sessionID string, err error)
}
