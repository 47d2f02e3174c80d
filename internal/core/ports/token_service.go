package ports

import "time"

// Claims is the decoded payload of an identity token.
type Claims struct {
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are never persisted; validity is established purely by signature
// and expiry.
type TokenService interface {
	Issue(userID int64, role string) (string, error)
	// Verify returns domain.ErrInvalidToken when the signature does not
	// match or the token has expired.
	Verify(token string) (*Claims, error)
}
