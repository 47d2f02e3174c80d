package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinetrack/movie-catalog/internal/core/domain"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

// UserService implements user record CRUD with owner-only writes.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update rewrites a user record. Only the owning user may update; the
// password is re-hashed on every call regardless of whether it changed.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.RequesterID != input.ID {
		return nil, fmt.Errorf("update user %d: %w", input.ID, domain.ErrNotOwner)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("update user %d: hash password: %w", input.ID, err)
	}

	user := &domain.User{
		ID:           input.ID,
		Email:        input.Email,
		PasswordHash: string(hash),
		Gender:       input.Gender,
		Role:         input.Role,
		UpdatedAt:    time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", input.ID, err)
	}

	s.log.Info().Int64("user_id", input.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a record owned by requesterID. The repository matches on
// both id and owner in one statement, so a foreign or missing record yields
// the same not-found result.
func (s *UserService) Delete(ctx context.Context, id, requesterID int64) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id, requesterID)
	if err != nil {
		return nil, fmt.Errorf("delete user %d: %w", id, err)
	}

	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return deleted, nil
}

func (s *UserService) ListPage(ctx context.Context, page, limit int) ([]domain.User, error) {
	page, limit = clampPage(page, limit)
	return s.repo.ListPage(ctx, page, limit)
}
