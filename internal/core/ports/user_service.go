package ports

import (
	"context"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// UpdateUserInput carries the full replacement payload for a user record.
// RequesterID is the authenticated caller taken from the token; only the
// owning user may update their own record.
type UpdateUserInput struct {
	ID          int64
	Email       string
	Password    string
	Gender      string
	Role        string
	RequesterID int64
}

// UserService defines use-case operations over user records.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Update rewrites the record. Returns domain.ErrNotOwner when
	// RequesterID differs from ID. The password is re-hashed on every
	// call, even if the caller sent an unchanged value.
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// Delete removes the record only when it is owned by requesterID;
	// otherwise domain.ErrUserNotFound (missing and not-owned are
	// indistinguishable by design, the delete matches on both columns).
	Delete(ctx context.Context, id, requesterID int64) (*domain.User, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.User, error)
}
