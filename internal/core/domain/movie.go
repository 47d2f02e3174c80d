package domain

import (
	"errors"
	"strings"
	"time"
)

// GenreSeparator delimits genre tags inside Movie.Genres ("Comedy|Drama").
const GenreSeparator = "|"

var ErrMovieNotFound = errors.New("movie not found")
var ErrForbidden = errors.New("access forbidden")

// Movie is a catalog entry. Genres is stored as a single delimited string,
// matching the catalog's import format.
type Movie struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Genres    string    `json:"genres"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenreList splits the delimited genres string into individual tags,
// dropping empty segments.
func (m Movie) GenreList() []string {
	parts := strings.Split(m.Genres, GenreSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
