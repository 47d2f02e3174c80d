package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

type stubMovieService struct {
	listFn     func(ctx context.Context) ([]domain.Movie, error)
	createFn   func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	updateFn   func(ctx context.Context, id int64, input ports.UpdateMovieInput) (*domain.Movie, error)
	deleteFn   func(ctx context.Context, id int64) (*domain.Movie, error)
	listPageFn func(ctx context.Context, page, limit int) ([]domain.Movie, error)
}

func (s *stubMovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.listFn(ctx)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) Update(ctx context.Context, id int64, input ports.UpdateMovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMovieService) Delete(ctx context.Context, id int64) (*domain.Movie, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubMovieService) ListPage(ctx context.Context, page, limit int) ([]domain.Movie, error) {
	return s.listPageFn(ctx, page, limit)
}

func TestMovieHandler_List(t *testing.T) {
	svc := &stubMovieService{
		listFn: func(_ context.Context) ([]domain.Movie, error) {
			return []domain.Movie{
				{ID: 1, Title: "Heat", Genres: "Crime|Thriller", Year: 1995},
				{ID: 2, Title: "Ran", Genres: "Drama", Year: 1985},
			}, nil
		},
	}
	h := NewMovieHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/movies", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Heat" || got[1].Year != 1985 {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestMovieHandler_ListPage(t *testing.T) {
	svc := &stubMovieService{
		listPageFn: func(_ context.Context, page, limit int) ([]domain.Movie, error) {
			if page != 2 || limit != 5 {
				t.Fatalf("expected page=2 limit=5, got %d %d", page, limit)
			}
			return []domain.Movie{{ID: 6, Title: "Alien", Genres: "Horror|Sci-Fi", Year: 1979}}, nil
		},
	}
	h := NewMovieHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/movies/paginate?page=2&limit=5", "")
	if err := h.ListPage(c); err != nil {
		t.Fatalf("list page: %v", err)
	}

	var got moviePageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Movies) != 1 || got.Movies[0].ID != 6 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestMovieHandler_ListPage_DefaultParams(t *testing.T) {
	svc := &stubMovieService{
		listPageFn: func(_ context.Context, page, limit int) ([]domain.Movie, error) {
			if page != 1 || limit != 10 {
				t.Fatalf("expected defaults page=1 limit=10, got %d %d", page, limit)
			}
			return nil, nil
		},
	}
	h := NewMovieHandler(svc)

	c, _ := newJSONContext(http.MethodGet, "/movies/paginate?page=abc", "")
	if err := h.ListPage(c); err != nil {
		t.Fatalf("list page: %v", err)
	}
}

func TestMovieHandler_Create_Success(t *testing.T) {
	svc := &stubMovieService{
		createFn: func(_ context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			if input.Role != "Manager" {
				t.Fatalf("expected role from claims, got %q", input.Role)
			}
			return &domain.Movie{ID: 3, Title: input.Title, Genres: input.Genres, Year: input.Year}, nil
		},
	}
	h := NewMovieHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/movies/create",
		`{"title":"Heat","genres":"Crime|Thriller","year":1995}`)
	c.Set("user_id", int64(7))
	c.Set("role", "Manager")

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 3 || got.Title != "Heat" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestMovieHandler_Create_Forbidden(t *testing.T) {
	svc := &stubMovieService{
		createFn: func(_ context.Context, _ ports.CreateMovieInput) (*domain.Movie, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewMovieHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/movies/create",
		`{"title":"Heat","genres":"Crime","year":1995}`)
	c.Set("user_id", int64(7))
	c.Set("role", "viewer")

	err := h.Create(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMovieHandler_Create_MissingClaims(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{})

	c, _ := newJSONContext(http.MethodPost, "/movies/create",
		`{"title":"Heat","genres":"Crime","year":1995}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMovieHandler_Create_InvalidYear(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{})

	c, _ := newJSONContext(http.MethodPost, "/movies/create",
		`{"title":"Heat","genres":"Crime","year":0}`)
	c.Set("user_id", int64(7))
	c.Set("role", "Manager")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestMovieHandler_Update_Success(t *testing.T) {
	svc := &stubMovieService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateMovieInput) (*domain.Movie, error) {
			if id != 3 {
				t.Fatalf("expected id=3, got %d", id)
			}
			return &domain.Movie{ID: id, Title: input.Title, Genres: input.Genres, Year: input.Year}, nil
		},
	}
	h := NewMovieHandler(svc)

	c, rec := newJSONContext(http.MethodPut, "/movies/update/3",
		`{"title":"Heat (Remastered)","genres":"Crime|Thriller","year":1995}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Title != "Heat (Remastered)" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestMovieHandler_Update_BadID(t *testing.T) {
	h := NewMovieHandler(&stubMovieService{})

	c, _ := newJSONContext(http.MethodPut, "/movies/update/abc",
		`{"title":"Heat","genres":"Crime","year":1995}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	svc := &stubMovieService{
		deleteFn: func(_ context.Context, id int64) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "Heat", Genres: "Crime", Year: 1995}, nil
		},
	}
	h := NewMovieHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/movies/delete/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 3 || got.Title != "Heat" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestMovieHandler_Delete_NotFound(t *testing.T) {
	svc := &stubMovieService{
		deleteFn: func(_ context.Context, _ int64) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	h := NewMovieHandler(svc)

	c, _ := newJSONContext(http.MethodDelete, "/movies/delete/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
