package ports

import (
	"context"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Email    string
	Password string
	Gender   string
	Role     string
}

type AuthService interface {
	// Register creates an account with a bcrypt-hashed password. Returns
	// domain.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login validates credentials and returns the user plus a signed token
	// embedding the user's id and role.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// VerifyToken decodes a bearer token into its claims.
	VerifyToken(token string) (*Claims, error)
}
