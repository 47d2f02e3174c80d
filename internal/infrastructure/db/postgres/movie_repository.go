package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

const movieColumns = "id, title, genres, year, created_at, updated_at"

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `
		INSERT INTO movies (title, genres, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + movieColumns

	row := r.db.QueryRowContext(ctx, query,
		movie.Title, movie.Genres, movie.Year, movie.CreatedAt, movie.UpdatedAt)

	created, err := scanMovie(row)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return created, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id)

	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `
		UPDATE movies
		SET title = $1, genres = $2, year = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + movieColumns

	row := r.db.QueryRowContext(ctx, query,
		movie.Title, movie.Genres, movie.Year, movie.UpdatedAt, movie.ID)

	updated, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return updated, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM movies WHERE id = $1 RETURNING `+movieColumns, id)

	deleted, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	return deleted, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (r *MovieRepository) ListPage(ctx context.Context, page, limit int) ([]domain.Movie, error) {
	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list movies page: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

func scanMovie(s scanner) (*domain.Movie, error) {
	var m domain.Movie
	err := s.Scan(&m.ID, &m.Title, &m.Genres, &m.Year, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMovies(rows *sql.Rows) ([]domain.Movie, error) {
	var movies []domain.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}
