package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

type stubUserService struct {
	listFn     func(ctx context.Context) ([]domain.User, error)
	updateFn   func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, id, requesterID int64) (*domain.User, error)
	listPageFn func(ctx context.Context, page, limit int) ([]domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, input)
}

func (s *stubUserService) Delete(ctx context.Context, id, requesterID int64) (*domain.User, error) {
	return s.deleteFn(ctx, id, requesterID)
}

func (s *stubUserService) ListPage(ctx context.Context, page, limit int) ([]domain.User, error) {
	return s.listPageFn(ctx, page, limit)
}

func TestUserHandler_List_HidesPasswordHashes(t *testing.T) {
	svc := &stubUserService{
		listFn: func(_ context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Email: "ana@example.com", PasswordHash: "$2a$10$secret", Role: "Manager"},
				{ID: 2, Email: "bob@example.com", PasswordHash: "$2a$10$hidden", Role: "viewer"},
			}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Email != "ana@example.com" {
		t.Fatalf("unexpected listing: %+v", got)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("response leaks password hash: %s", rec.Body.String())
	}
}

func TestUserHandler_ListPage(t *testing.T) {
	svc := &stubUserService{
		listPageFn: func(_ context.Context, page, limit int) ([]domain.User, error) {
			if page != 3 || limit != 2 {
				t.Fatalf("expected page=3 limit=2, got %d %d", page, limit)
			}
			return []domain.User{{ID: 5, Email: "eve@example.com", Role: "viewer"}}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/users/paginate?page=3&limit=2", "")
	if err := h.ListPage(c); err != nil {
		t.Fatalf("list page: %v", err)
	}

	var got userPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Users) != 1 || got.Users[0].ID != 5 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, input ports.UpdateUserInput) (*domain.User, error) {
			if input.ID != 7 || input.RequesterID != 7 {
				t.Fatalf("expected id and requester 7, got %d %d", input.ID, input.RequesterID)
			}
			return &domain.User{ID: input.ID, Email: input.Email, Gender: input.Gender, Role: input.Role}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodPut, "/users/update/7",
		`{"email":"ana@example.com","password":"newpass","gender":"F","role":"Manager"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set("user_id", int64(7))
	c.Set("role", "Manager")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 7 || got.Email != "ana@example.com" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestUserHandler_Update_NotOwner(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, _ ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrNotOwner
		},
	}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(http.MethodPut, "/users/update/8",
		`{"email":"bob@example.com","password":"newpass","role":"viewer"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	c.Set("user_id", int64(7))
	c.Set("role", "viewer")

	err := h.Update(c)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	svc := &stubUserService{
		deleteFn: func(_ context.Context, id, requesterID int64) (*domain.User, error) {
			if id != 7 || requesterID != 7 {
				t.Fatalf("expected id and requester 7, got %d %d", id, requesterID)
			}
			return &domain.User{ID: id, Email: "ana@example.com", Role: "Manager"}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/users/delete/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set("user_id", int64(7))
	c.Set("role", "Manager")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Foreign(t *testing.T) {
	svc := &stubUserService{
		deleteFn: func(_ context.Context, _, _ int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(http.MethodDelete, "/users/delete/8", "")
	c.SetParamNames("id")
	c.SetParamValues("8")
	c.Set("user_id", int64(7))
	c.Set("role", "viewer")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
