package ports

import (
	"context"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email already exists (unique constraint on users.email).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update rewrites every mutable column of the row matching id and
	// returns the updated record.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the row matching both id and ownerID in a single
	// statement, returning the deleted record. domain.ErrUserNotFound is
	// returned when no row matches (missing or not owned).
	Delete(ctx context.Context, id, ownerID int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// ListPage returns rows at offset (page-1)*limit, at most limit rows.
	ListPage(ctx context.Context, page, limit int) ([]domain.User, error)
}
