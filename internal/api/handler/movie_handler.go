package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cinetrack/movie-catalog/internal/api/metrics"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// List handles GET /movies — the full public catalog.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}   movieResponse
// @Failure      500  {object}  errorResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponses(movies))
}

// ListPage handles GET /movies/paginate?page&limit.
//
// @Summary      List movies with pagination
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  moviePageResponse
// @Failure      401    {object}  errorResponse
// @Router       /movies/paginate [get]
func (h *MovieHandler) ListPage(c echo.Context) error {
	page, limit := pageParams(c)

	movies, err := h.service.ListPage(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moviePageResponse{Movies: toMovieResponses(movies)})
}

// Create handles POST /movies/create. Requires the Manager role.
//
// @Summary      Create a new movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /movies/create [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:  req.Title,
		Genres: req.Genres,
		Year:   req.Year,
		Role:   role,
	})
	if err != nil {
		return err
	}

	metrics.MoviesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Update handles PUT /movies/update/:id.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Movie id"
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  movieResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/update/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), id, ports.UpdateMovieInput{
		Title:  req.Title,
		Genres: req.Genres,
		Year:   req.Year,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete handles DELETE /movies/delete/:id.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Movie id"
// @Success      200  {object}  movieResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /movies/delete/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// pageParams parses page/limit query parameters; non-numeric values fall
// back to the first page of ten rows. The service clamps ranges.
func pageParams(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 10
	}
	return page, limit
}
