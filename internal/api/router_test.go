package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinetrack/movie-catalog/internal/pkg/config"
)

// NewRouter only stores the db and redis handles inside repositories, so a
// nil pair is enough to assert the route table.
func TestNewRouter_RegistersRoutes(t *testing.T) {
	cfg := &config.Config{
		Port:      "8080",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}

	e := NewRouter(nil, nil, cfg, zerolog.Nop())

	want := map[string]string{
		http.MethodPost + " /auth/register":       "",
		http.MethodPost + " /auth/login":          "",
		http.MethodGet + " /auth/verify/:token":   "",
		http.MethodGet + " /movies":               "",
		http.MethodGet + " /movies/paginate":      "",
		http.MethodPost + " /movies/create":       "",
		http.MethodPut + " /movies/update/:id":    "",
		http.MethodDelete + " /movies/delete/:id": "",
		http.MethodGet + " /users":                "",
		http.MethodGet + " /users/paginate":       "",
		http.MethodPut + " /users/update/:id":     "",
		http.MethodDelete + " /users/delete/:id":  "",
		http.MethodGet + " /metrics":              "",
		http.MethodGet + " /health":               "",
		http.MethodGet + " /health/ready":         "",
	}

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for route := range want {
		if !registered[route] {
			t.Errorf("route not registered: %s", route)
		}
	}
}
