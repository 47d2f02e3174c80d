package handler

import "time"

type movieRequest struct {
	Title  string `json:"title"  validate:"required"`
	Genres string `json:"genres" validate:"required"`
	Year   int    `json:"year"   validate:"required,gt=0"`
}

type movieResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Genres    string    `json:"genres"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// moviePageResponse wraps a paginated movie listing.
type moviePageResponse struct {
	Movies []movieResponse `json:"movies"`
}
