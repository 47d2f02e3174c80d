package handler

import (
	"github.com/cinetrack/movie-catalog/internal/core/domain"
)

// Domain → response mapping. Response types are owned by the transport
// layer so the JSON contract is not coupled to internal model changes, and
// so sensitive fields (the password hash) cannot leak by accident.

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Gender:    u.Gender,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:        m.ID,
		Title:     m.Title,
		Genres:    m.Genres,
		Year:      m.Year,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	out := make([]movieResponse, len(movies))
	for i := range movies {
		out[i] = toMovieResponse(&movies[i])
	}
	return out
}
