package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

const maxPageLimit = 100

// MovieCache abstracts the short-TTL listing cache (Redis). Misses and
// cache failures both fall through to the repository.
type MovieCache interface {
	GetList(ctx context.Context) ([]domain.Movie, bool)
	SetList(ctx context.Context, movies []domain.Movie) error
	GetPage(ctx context.Context, page, limit int) ([]domain.Movie, bool)
	SetPage(ctx context.Context, page, limit int, movies []domain.Movie) error
	Invalidate(ctx context.Context) error
}

// MovieService implements catalog CRUD. Creation is the only role-gated
// operation; update and delete require only an authenticated caller, which
// the router enforces.
type MovieService struct {
	repo  ports.MovieRepository
	cache MovieCache
	log   zerolog.Logger
}

// NewMovieService returns a MovieService. cache may be nil, in which case
// every read goes straight to the repository.
func NewMovieService(repo ports.MovieRepository, cache MovieCache, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, cache: cache, log: log}
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	if s.cache != nil {
		if movies, ok := s.cache.GetList(ctx); ok {
			return movies, nil
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, movies); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache movie list")
		}
	}
	return movies, nil
}

// Create inserts a new catalog entry; only managers may create movies.
func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if input.Role != domain.RoleManager {
		return nil, fmt.Errorf("create movie: %w", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	movie := &domain.Movie{
		Title:     input.Title,
		Genres:    input.Genres,
		Year:      input.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Int64("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

// Update rewrites a movie unconditionally by id.
func (s *MovieService) Update(ctx context.Context, id int64, input ports.UpdateMovieInput) (*domain.Movie, error) {
	movie := &domain.Movie{
		ID:        id,
		Title:     input.Title,
		Genres:    input.Genres,
		Year:      input.Year,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}

	s.invalidateCache(ctx)
	return updated, nil
}

// Delete removes a movie unconditionally by id, returning the deleted record.
func (s *MovieService) Delete(ctx context.Context, id int64) (*domain.Movie, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete movie %d: %w", id, err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Int64("movie_id", id).Msg("movie deleted")
	return deleted, nil
}

// ListPage returns the requested page. Page numbers below 1 are coerced to
// the first page and the limit is clamped to 1..100.
func (s *MovieService) ListPage(ctx context.Context, page, limit int) ([]domain.Movie, error) {
	page, limit = clampPage(page, limit)

	if s.cache != nil {
		if movies, ok := s.cache.GetPage(ctx, page, limit); ok {
			return movies, nil
		}
	}

	movies, err := s.repo.ListPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, page, limit, movies); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache movie page")
		}
	}
	return movies, nil
}

func (s *MovieService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate movie cache")
	}
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
