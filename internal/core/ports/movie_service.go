package ports

import (
	"context"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// CreateMovieInput carries the payload for a new catalog entry. Role is the
// caller's decoded token role; creation is restricted to managers.
type CreateMovieInput struct {
	Title  string
	Genres string
	Year   int
	Role   string
}

// UpdateMovieInput carries the full replacement payload for a movie.
type UpdateMovieInput struct {
	Title  string
	Genres string
	Year   int
}

// MovieService defines use-case operations over the movie catalog.
type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	// Create inserts a movie. Returns domain.ErrForbidden unless the
	// caller's role is domain.RoleManager.
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id int64, input UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id int64) (*domain.Movie, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.Movie, error)
}
