package ports

import (
	"context"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// MovieRepository defines persistence operations for the movie catalog.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	FindByID(ctx context.Context, id int64) (*domain.Movie, error)
	// Update rewrites title, genres and year of the row matching id and
	// returns the updated record, or domain.ErrMovieNotFound.
	Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	// Delete removes the row matching id and returns the deleted record,
	// or domain.ErrMovieNotFound.
	Delete(ctx context.Context, id int64) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.Movie, error)
}
