package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/cinetrack/movie-catalog/internal/api/handler"
	"github.com/cinetrack/movie-catalog/internal/api/middleware"
	"github.com/cinetrack/movie-catalog/internal/core/domain"
	"github.com/cinetrack/movie-catalog/internal/core/service"
	"github.com/cinetrack/movie-catalog/internal/infrastructure/db/postgres"
	redisdb "github.com/cinetrack/movie-catalog/internal/infrastructure/db/redis"
	"github.com/cinetrack/movie-catalog/internal/infrastructure/http/handlers"
	"github.com/cinetrack/movie-catalog/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("moviecatalog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	movieCache := redisdb.NewMovieCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	movieService := service.NewMovieService(movieRepo, movieCache, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(tokenService)
	managerOnly := middleware.RBAC(domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify/:token", authHandler.Verify)

	// --- Movie routes ---
	e.GET("/movies", movieHandler.List)
	e.GET("/movies/paginate", movieHandler.ListPage, auth)
	e.POST("/movies/create", movieHandler.Create, auth, managerOnly)
	e.PUT("/movies/update/:id", movieHandler.Update, auth)
	e.DELETE("/movies/delete/:id", movieHandler.Delete, auth)

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.GET("/users/paginate", userHandler.ListPage)
	e.PUT("/users/update/:id", userHandler.Update, auth)
	e.DELETE("/users/delete/:id", userHandler.Delete, auth)

	// --- Ops surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
