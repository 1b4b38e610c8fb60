package ports

// SessionCodec issues and verifies the self-contained session tokens carried
// in the session cookie.
type SessionCodec interface {
	// Issue produces a signed token bound to the given user identifier.
	Issue(userID string) (string, error)
	// Decode verifies the signature and returns the embedded user
	// identifier, or domain.ErrInvalidSession.
	Decode(token string) (string, error)
}

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, storedHash string) bool
}
