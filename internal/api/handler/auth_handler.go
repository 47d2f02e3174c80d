package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinetrack/movie-catalog/internal/api/metrics"
	"github.com/cinetrack/movie-catalog/internal/core/ports"
)

// AuthHandler handles registration, login and token verification.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		User: loginUserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	})
}

// Verify decodes a token and returns its claims.
//
// @Summary      Verify a token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Token to verify"
// @Success      200    {object}  verifyResponse
// @Failure      401    {object}  errorResponse
// @Router       /auth/verify/{token} [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := h.authService.VerifyToken(c.Param("token"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyResponse{
		Data: claimsResponse{
			UserID:    claims.UserID,
			Role:      claims.Role,
			ExpiresAt: claims.ExpiresAt,
		},
	})
}
